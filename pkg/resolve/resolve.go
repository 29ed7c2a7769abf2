// Package resolve implements the value resolution pipeline: for each schema
// entry without a current value it selects a resolver (a plugin-provided
// value source, the bundled resolver for the directive type, or the
// placeholder fallback) and invokes it to produce a value.
//
// Resolution is strictly sequential in schema order. The pipeline accumulates
// every resolved value into the pass's current-values map as it advances, so
// copy directives may reference values resolved earlier in the same pass.
// Resolution-level problems never abort a pass; they surface as warning
// strings on the resolved value.
package resolve

import (
	"github.com/EnvForge/envforge/pkg/config"
	"github.com/EnvForge/envforge/pkg/schema"
	"github.com/EnvForge/envforge/pkg/workspace"
)

// Source tags where a resolved value came from. Plugin sources use their own
// tags beyond the bundled set.
type Source string

const (
	// SourcePrompted means the user typed the value.
	SourcePrompted Source = "prompted"

	// SourceDefault means a declared default or example value was used.
	SourceDefault Source = "default"

	// SourceCopied means the value was copied from another variable.
	SourceCopied Source = "copied"

	// SourcePlaceholder means a placeholder value was filled in.
	SourcePlaceholder Source = "placeholder"
)

// ResolvedValue is the outcome of resolving one variable.
type ResolvedValue struct {
	// Value is the resolved value. Empty when Skipped is set.
	Value string

	// Source tags which strategy produced the value.
	Source Source

	// Warning describes why a fallback or skip happened. Every silent
	// fallback to a placeholder carries one.
	Warning string

	// Skipped marks a variable deliberately left unresolved.
	Skipped bool
}

// Context is the shared state of one resolution pass. It is passed by
// reference to every resolver in the pass and never persisted beyond it.
type Context struct {
	// App is the app whose schema is being resolved.
	App *workspace.App

	// CurrentValues maps variable name to value, seeded from the actual env
	// file and appended to as the pass resolves variables in schema order.
	// A resolver only ever sees entries for variables earlier in the pass.
	CurrentValues map[string]string

	// Interactive reports whether the pass may prompt the user.
	Interactive bool

	// Config is the active configuration (CI detection table, skip list).
	Config *config.Config

	// RootDir is the workspace root path.
	RootDir string

	// Prompter asks the user for input. Required when Interactive is set.
	Prompter Prompter
}

// NewContext creates a resolution pass context with an empty current-values map.
func NewContext(app *workspace.App, cfg *config.Config, rootDir string) *Context {
	return &Context{
		App:           app,
		CurrentValues: make(map[string]string),
		Config:        cfg,
		RootDir:       rootDir,
	}
}

// ResolverFunc produces a value for one variable definition.
type ResolverFunc func(def schema.VariableDefinition, rctx *Context) (*ResolvedValue, error)

// ValueSource is the contract plugin-provided resolvers satisfy. Sources are
// consulted before the bundled resolvers; any match wins outright.
type ValueSource interface {
	// Matches reports whether this source handles the definition's directive.
	Matches(def schema.VariableDefinition) bool

	// Resolve produces a value for the definition.
	Resolve(def schema.VariableDefinition, rctx *Context) (*ResolvedValue, error)
}
