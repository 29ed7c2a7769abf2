// Package plugin provides the extension architecture for EnvForge.
//
// A plugin contributes any combination of value sources (additional
// resolvers), deployment providers, CLI commands, lifecycle hooks and
// ignore-missing variable sets. Plugins are described by a static descriptor
// list resolved at startup; there is no dynamic module loading. The registry
// holding the loaded plugins is an explicit value constructed once per command
// invocation and passed through the call chain, never a hidden global, so
// its reset lifecycle is creation, not a clear function.
package plugin

import (
	"context"
	"fmt"
	"regexp"

	"github.com/EnvForge/envforge/pkg/resolve"
	"github.com/EnvForge/envforge/pkg/schema"
	"github.com/EnvForge/envforge/pkg/workspace"
)

// Plugin is one loaded plugin: a name plus the capability lists it
// contributes. Any list may be empty.
type Plugin struct {
	// Name is the unique identifier for the plugin.
	Name string

	// Version is the plugin version, informational.
	Version string

	// Sources are additional value resolvers, consulted before the bundled
	// resolver set.
	Sources []*ValueSourceProvider

	// DeploymentProviders push resolved values to hosting platforms.
	DeploymentProviders []DeploymentProvider

	// Commands are extra CLI subcommands.
	Commands []Command

	// Hooks are the plugin's lifecycle hooks.
	Hooks *Hooks

	// IgnoreMissing names variables to drop from every app schema: never
	// resolved, never reported missing.
	IgnoreMissing []string
}

// ValueSourceProvider is the plugin resolver contract: it matches a
// definition's directive by type or by pattern, and resolves it with the same
// signature as a bundled resolver. It satisfies resolve.ValueSource.
type ValueSourceProvider struct {
	// DirectiveType matches definitions whose directive type equals it.
	// Declaring a type here also teaches the parser to preserve the tag
	// instead of degrading it to placeholder.
	DirectiveType string

	// Pattern is a regular expression matched against the raw directive tag
	// (e.g. "^@vault:"). Either DirectiveType or Pattern must be set.
	Pattern string

	// ResolveFunc produces the value.
	ResolveFunc resolve.ResolverFunc

	pattern *regexp.Regexp
}

// compile validates the provider and prepares its pattern.
func (p *ValueSourceProvider) compile() error {
	if p.DirectiveType == "" && p.Pattern == "" {
		return fmt.Errorf("value source declares neither a directive type nor a pattern")
	}
	if p.ResolveFunc == nil {
		return fmt.Errorf("value source has no resolve function")
	}
	if p.Pattern != "" {
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			return fmt.Errorf("invalid value source pattern %q: %w", p.Pattern, err)
		}
		p.pattern = re
	}
	return nil
}

// Matches reports whether this source handles the definition's directive.
// Any match, type or pattern, wins.
func (p *ValueSourceProvider) Matches(def schema.VariableDefinition) bool {
	if p.DirectiveType != "" && string(def.Directive.Type) == p.DirectiveType {
		return true
	}
	if p.pattern != nil && p.pattern.MatchString(def.Directive.Raw) {
		return true
	}
	return false
}

// Resolve produces a value for the definition.
func (p *ValueSourceProvider) Resolve(def schema.VariableDefinition, rctx *resolve.Context) (*resolve.ResolvedValue, error) {
	return p.ResolveFunc(def, rctx)
}

// DeploymentProvider pushes resolved values to a deployment platform.
// Concrete platform implementations live in plugins; the core only carries
// the contract.
type DeploymentProvider interface {
	// Name identifies the provider.
	Name() string

	// Push uploads the values for the app.
	Push(ctx context.Context, app *workspace.App, values map[string]string) error
}

// Command is a CLI subcommand contributed by a plugin.
type Command struct {
	// Name is the subcommand name.
	Name string

	// Short is the one-line help text.
	Short string

	// Run executes the command.
	Run func(ctx context.Context, args []string) error
}

// Hooks are the lifecycle hooks a plugin may install. Any hook may be nil.
// Hooks run sequentially in plugin registration order; a hook failure aborts
// the whole command.
type Hooks struct {
	// OnInit runs once after every plugin has loaded, before any command.
	OnInit func(ctx context.Context) error

	// BeforeSync runs immediately before a sync pass for an app.
	BeforeSync func(ctx context.Context, app *workspace.App) error

	// AfterSync runs after a sync pass completed.
	AfterSync func(ctx context.Context, app *workspace.App) error
}
