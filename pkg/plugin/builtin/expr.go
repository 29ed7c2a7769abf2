// Package builtin carries the plugins bundled with EnvForge. They are plain
// plugins: enabled through configuration, registered through the normal
// descriptor list, and subject to the same precedence rules as any external
// value source.
package builtin

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/EnvForge/envforge/pkg/plugin"
	"github.com/EnvForge/envforge/pkg/resolve"
	"github.com/EnvForge/envforge/pkg/schema"
)

// ExprDirective is the directive tag the expression plugin claims.
const ExprDirective = "expr"

// SourceExpr tags values produced by the expression plugin.
const SourceExpr resolve.Source = "expr"

// ExprPlugin describes the expression value source: variables annotated
// `@expr:<expression>` are computed by evaluating the expression over the
// values resolved earlier in the pass.
//
//	# @expr:PROTOCOL + "://" + HOST + ":" + PORT
//	BASE_URL=
func ExprPlugin() plugin.Descriptor {
	return plugin.Descriptor{
		Name: "expr",
		New: func() (*plugin.Plugin, error) {
			return &plugin.Plugin{
				Name:    "expr",
				Version: "1.0.0",
				Sources: []*plugin.ValueSourceProvider{
					{
						DirectiveType: ExprDirective,
						ResolveFunc:   resolveExpr,
					},
				},
			}, nil
		},
	}
}

// resolveExpr evaluates the directive argument as an expression. Failures fall
// back to the example value with a warning, like every other resolver.
func resolveExpr(def schema.VariableDefinition, rctx *resolve.Context) (*resolve.ResolvedValue, error) {
	expression := def.Directive.Argument
	if expression == "" {
		return &resolve.ResolvedValue{
			Value:   def.ExampleValue,
			Source:  resolve.SourcePlaceholder,
			Warning: fmt.Sprintf("Expression directive for %s is empty", def.Name),
		}, nil
	}

	env := exprEnvironment(rctx.CurrentValues)
	program, err := expr.Compile(expression, expr.Env(env))
	if err != nil {
		return exprFallback(def, expression, err), nil
	}

	output, err := expr.Run(program, env)
	if err != nil {
		return exprFallback(def, expression, err), nil
	}

	return &resolve.ResolvedValue{
		Value:  fmt.Sprintf("%v", output),
		Source: SourceExpr,
	}, nil
}

func exprFallback(def schema.VariableDefinition, expression string, err error) *resolve.ResolvedValue {
	return &resolve.ResolvedValue{
		Value:   def.ExampleValue,
		Source:  resolve.SourcePlaceholder,
		Warning: fmt.Sprintf("Expression %q failed for %s: %v", expression, def.Name, err),
	}
}

// exprEnvironment exposes every value resolved so far both as a bare
// identifier and through the values map, plus a few string helpers.
func exprEnvironment(currentValues map[string]string) map[string]interface{} {
	env := make(map[string]interface{}, len(currentValues)+4)
	for name, value := range currentValues {
		env[name] = value
	}
	env["values"] = currentValues
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["trim"] = strings.TrimSpace
	return env
}
