package resolve

import (
	"fmt"

	"github.com/EnvForge/envforge/pkg/schema"
)

// Resolution pairs a schema entry with its resolved value, in pass order.
type Resolution struct {
	Definition schema.VariableDefinition
	Result     *ResolvedValue
}

// Pipeline resolves a schema in order. Resolver precedence for each entry is
// strict: a matching plugin value source first, then the bundled resolver for
// the directive type, then the placeholder fallback.
type Pipeline struct {
	sources []ValueSource
	builtin map[schema.DirectiveType]ResolverFunc
}

// NewPipeline creates a pipeline. Sources are consulted in the given order;
// the first match wins.
func NewPipeline(sources ...ValueSource) *Pipeline {
	return &Pipeline{
		sources: sources,
		builtin: builtinResolvers(),
	}
}

// Run walks the schema front to back and resolves every entry that does not
// already have a non-empty current value. Each resolved, non-skipped value is appended
// to rctx.CurrentValues before the pass advances, so later copy directives can
// reference it. Runs must not be parallelized: ordering is the contract.
//
// The returned slice holds one Resolution per entry the pass actually
// resolved, in schema order. Only prompter I/O failures abort a run;
// resolution-level problems are warnings on the individual results.
func (p *Pipeline) Run(s schema.Schema, rctx *Context) ([]Resolution, error) {
	if rctx.CurrentValues == nil {
		rctx.CurrentValues = make(map[string]string)
	}

	out := make([]Resolution, 0, len(s))
	for _, def := range s {
		// An empty assignment seeded from the actual file is not a resolved
		// value; the reconciler classifies the same state as missing.
		if value, exists := rctx.CurrentValues[def.Name]; exists && value != "" {
			continue
		}

		if rctx.Config != nil && rctx.Config.SkipsDirective(string(def.Directive.Type)) {
			out = append(out, Resolution{
				Definition: def,
				Result:     &ResolvedValue{Source: SourceDefault, Skipped: true},
			})
			continue
		}

		rv, err := p.resolveOne(def, rctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", def.Name, err)
		}

		if !rv.Skipped {
			rctx.CurrentValues[def.Name] = rv.Value
		}
		out = append(out, Resolution{Definition: def, Result: rv})
	}

	return out, nil
}

// resolveOne dispatches a single definition by precedence.
func (p *Pipeline) resolveOne(def schema.VariableDefinition, rctx *Context) (*ResolvedValue, error) {
	for _, source := range p.sources {
		if source.Matches(def) {
			return source.Resolve(def, rctx)
		}
	}

	if resolver, ok := p.builtin[def.Directive.Type]; ok {
		return resolver(def, rctx)
	}

	return resolvePlaceholder(def, rctx)
}

// Warnings collects the non-empty warnings of a pass, in pass order.
func Warnings(resolutions []Resolution) []string {
	var out []string
	for _, r := range resolutions {
		if r.Result.Warning != "" {
			out = append(out, r.Result.Warning)
		}
	}
	return out
}
