package resolve

import (
	"fmt"
	"strings"

	"github.com/EnvForge/envforge/pkg/schema"
)

// builtinResolvers returns the bundled resolver table keyed by directive type.
func builtinResolvers() map[schema.DirectiveType]ResolverFunc {
	return map[schema.DirectiveType]ResolverFunc{
		schema.DirectivePlaceholder: resolvePlaceholder,
		schema.DirectiveDefault:     resolveDefault,
		schema.DirectiveCopy:        resolveCopy,
		schema.DirectiveComputed:    resolveComputed,
		schema.DirectiveLocalOnly:   resolveLocalOnly,
		schema.DirectivePrompt:      resolvePrompt,
	}
}

// placeholderValue is the value the placeholder fallback produces: the example
// value, or a synthesized marker when the example is empty.
func placeholderValue(def schema.VariableDefinition) string {
	if def.ExampleValue != "" {
		return def.ExampleValue
	}
	return "REPLACE_ME_" + def.Name
}

// resolvePlaceholder fills in the example value or a REPLACE_ME marker.
// Required variables get a warning so the fallback is never silent.
func resolvePlaceholder(def schema.VariableDefinition, rctx *Context) (*ResolvedValue, error) {
	rv := &ResolvedValue{
		Value:  placeholderValue(def),
		Source: SourcePlaceholder,
	}
	if def.Required() {
		rv.Warning = fmt.Sprintf("Placeholder used for required variable: %s", def.Name)
	}
	return rv, nil
}

// resolveDefault uses the declared default, falling back to the example value,
// falling back to empty. Never warns.
func resolveDefault(def schema.VariableDefinition, rctx *Context) (*ResolvedValue, error) {
	value := def.Directive.DefaultValue
	if value == "" {
		value = def.ExampleValue
	}
	return &ResolvedValue{Value: value, Source: SourceDefault}, nil
}

// resolveCopy looks the source variable up in the values accumulated so far
// this pass. Both failure modes, no source declared and source not resolved
// yet, fall back to the example value with a warning.
func resolveCopy(def schema.VariableDefinition, rctx *Context) (*ResolvedValue, error) {
	source := def.Directive.CopyFrom
	if source == "" {
		return &ResolvedValue{
			Value:   def.ExampleValue,
			Source:  SourcePlaceholder,
			Warning: fmt.Sprintf("Copy directive for %s is missing a source variable", def.Name),
		}, nil
	}

	if value, ok := rctx.CurrentValues[source]; ok {
		return &ResolvedValue{Value: value, Source: SourceCopied}, nil
	}

	return &ResolvedValue{
		Value:   def.ExampleValue,
		Source:  SourcePlaceholder,
		Warning: fmt.Sprintf("Copy source %s not found for %s", source, def.Name),
	}, nil
}

// resolveComputed always falls back to the placeholder value: there are no
// bundled compute implementations, only plugin-provided ones, so reaching this
// resolver means nothing claimed the compute type.
func resolveComputed(def schema.VariableDefinition, rctx *Context) (*ResolvedValue, error) {
	warning := fmt.Sprintf("Computed variable %s has no compute type specified", def.Name)
	if ct := def.Directive.ComputeType; ct != "" {
		warning = fmt.Sprintf("Compute type %q is not supported for %s", ct, def.Name)
	}
	return &ResolvedValue{
		Value:   placeholderValue(def),
		Source:  SourcePlaceholder,
		Warning: warning,
	}, nil
}

// resolveLocalOnly skips the variable entirely when the pass is non-interactive
// or a CI environment is detected; otherwise it behaves like default.
func resolveLocalOnly(def schema.VariableDefinition, rctx *Context) (*ResolvedValue, error) {
	if !rctx.Interactive || (rctx.Config != nil && rctx.Config.CIDetected()) {
		return &ResolvedValue{Source: SourceDefault, Skipped: true}, nil
	}

	value := def.Directive.DefaultValue
	if value == "" {
		value = def.ExampleValue
	}
	return &ResolvedValue{Value: value, Source: SourceDefault}, nil
}

// resolvePrompt asks the user for a value. Outside an interactive pass it
// degrades to the placeholder immediately.
func resolvePrompt(def schema.VariableDefinition, rctx *Context) (*ResolvedValue, error) {
	if !rctx.Interactive || rctx.Prompter == nil {
		return &ResolvedValue{
			Value:   placeholderValue(def),
			Source:  SourcePlaceholder,
			Warning: fmt.Sprintf("Skipped prompt for %s: non-interactive mode", def.Name),
		}, nil
	}

	message := fmt.Sprintf("Enter value for %s", def.Name)
	if def.Description != "" {
		message = fmt.Sprintf("%s (%s)", message, firstLine(def.Description))
	}

	for {
		answer, err := rctx.Prompter.Input(message, def.ExampleValue)
		if err != nil {
			return nil, err
		}

		value := strings.TrimSpace(answer)
		if value == "" {
			value = def.ExampleValue
		}
		if value != "" {
			return &ResolvedValue{Value: value, Source: SourcePrompted}, nil
		}

		if !def.Required() {
			return &ResolvedValue{Source: SourcePrompted, Skipped: true}, nil
		}

		// Required with no value typed and no example to fall back on:
		// skipping has to be an explicit decision.
		skip, err := rctx.Prompter.Confirm(
			fmt.Sprintf("%s is required. Skip it anyway?", def.Name), false)
		if err != nil {
			return nil, err
		}
		if skip {
			return &ResolvedValue{
				Source:  SourcePrompted,
				Skipped: true,
				Warning: fmt.Sprintf("Required variable %s was explicitly skipped", def.Name),
			}, nil
		}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
