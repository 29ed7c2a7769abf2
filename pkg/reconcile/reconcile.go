// Package reconcile diffs a merged schema against an actual env file,
// classifying every variable as valid, missing, extra or deprecated, and
// detecting app-local overrides of shared values.
package reconcile

import (
	"github.com/EnvForge/envforge/pkg/envfile"
	"github.com/EnvForge/envforge/pkg/schema"
	"github.com/EnvForge/envforge/pkg/workspace"
)

// Override records an app-local value that differs from the shared root value.
// Informational only: it never affects validity.
type Override struct {
	SharedValue string
	AppValue    string
}

// Result is the classification handed to the presentation layer. Its shape is
// the stable interface reporting code consumes.
type Result struct {
	App *workspace.App

	// Valid variables are present in the actual file with a non-empty value.
	Valid []schema.VariableDefinition

	// Missing variables are absent or empty. The full definition is carried
	// so callers can branch on the requirement.
	Missing []schema.VariableDefinition

	// Extra names are present in the actual file but absent from the schema.
	Extra []string

	// Deprecated names are configured as retired but still present,
	// reported separately from Extra.
	Deprecated []string

	// Overrides maps shared variable names to their diverging values.
	Overrides map[string]Override
}

// Reconciler classifies schema-versus-actual drift.
type Reconciler struct {
	// DeprecatedNames are the variables configured as retired.
	DeprecatedNames []string
}

// New creates a Reconciler.
func New(deprecatedNames []string) *Reconciler {
	return &Reconciler{DeprecatedNames: deprecatedNames}
}

// CompareSchemaToActual classifies each schema entry against the actual env
// file. sharedValues holds the root actual file's values and sharedVarNames
// the variables declared at the root; together they drive override detection:
// a shared variable whose app-local value differs from the shared value is
// recorded as an override.
//
// A variable present in the actual file with an empty value counts as missing,
// not valid: presence without content is not a resolved variable.
func (r *Reconciler) CompareSchemaToActual(
	s schema.Schema,
	actual *envfile.File,
	app *workspace.App,
	sharedValues map[string]string,
	sharedVarNames []string,
) *Result {
	result := &Result{
		App:       app,
		Overrides: make(map[string]Override),
	}

	inSchema := make(map[string]struct{}, len(s))
	for _, def := range s {
		inSchema[def.Name] = struct{}{}
		if value, ok := actual.Values[def.Name]; ok && value != "" {
			result.Valid = append(result.Valid, def)
		} else {
			result.Missing = append(result.Missing, def)
		}
	}

	for _, name := range actual.Names {
		if _, ok := inSchema[name]; ok {
			continue
		}
		if r.isDeprecated(name) {
			result.Deprecated = append(result.Deprecated, name)
		} else {
			result.Extra = append(result.Extra, name)
		}
	}

	for _, name := range sharedVarNames {
		appValue, inApp := actual.Values[name]
		sharedValue, inShared := sharedValues[name]
		if inApp && inShared && appValue != sharedValue {
			result.Overrides[name] = Override{
				SharedValue: sharedValue,
				AppValue:    appValue,
			}
		}
	}

	return result
}

// Clean reports whether the result has no missing required variables.
// Whether missing variables fail the invocation is the calling command's call.
func (result *Result) Clean() bool {
	for _, def := range result.Missing {
		if def.Required() {
			return false
		}
	}
	return true
}

func (r *Reconciler) isDeprecated(name string) bool {
	for _, n := range r.DeprecatedNames {
		if n == name {
			return true
		}
	}
	return false
}
