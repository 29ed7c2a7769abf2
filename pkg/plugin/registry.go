package plugin

import (
	"context"
	"fmt"

	"github.com/EnvForge/envforge/pkg/resolve"
	"github.com/EnvForge/envforge/pkg/workspace"
)

// Registry aggregates the capabilities of all registered plugins. Create one
// per command invocation with NewRegistry; a fresh registry is the reset.
type Registry struct {
	plugins   []*Plugin
	sources   []*ValueSourceProvider
	providers []DeploymentProvider
	commands  []Command
	hooks     []namedHooks
}

type namedHooks struct {
	plugin string
	hooks  *Hooks
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends the plugin and flattens its capability lists into the
// registry's parallel lists. A plugin contributing nothing for a category is
// simply absent from that category.
func (r *Registry) Register(p *Plugin) error {
	if p == nil {
		return fmt.Errorf("cannot register a nil plugin")
	}
	if p.Name == "" {
		return fmt.Errorf("plugin name cannot be empty")
	}
	for _, existing := range r.plugins {
		if existing.Name == p.Name {
			return fmt.Errorf("plugin %q is already registered", p.Name)
		}
	}

	for _, source := range p.Sources {
		if err := source.compile(); err != nil {
			return fmt.Errorf("plugin %q: %w", p.Name, err)
		}
	}

	r.plugins = append(r.plugins, p)
	r.sources = append(r.sources, p.Sources...)
	r.providers = append(r.providers, p.DeploymentProviders...)
	r.commands = append(r.commands, p.Commands...)
	if p.Hooks != nil {
		r.hooks = append(r.hooks, namedHooks{plugin: p.Name, hooks: p.Hooks})
	}

	return nil
}

// Plugins returns the registered plugins in registration order.
func (r *Registry) Plugins() []*Plugin {
	return r.plugins
}

// Sources returns all value sources as resolve.ValueSource, in registration
// order. Order matters: the pipeline takes the first match.
func (r *Registry) Sources() []resolve.ValueSource {
	out := make([]resolve.ValueSource, len(r.sources))
	for i, s := range r.sources {
		out[i] = s
	}
	return out
}

// DeploymentProviders returns all deployment providers in registration order.
func (r *Registry) DeploymentProviders() []DeploymentProvider {
	return r.providers
}

// Commands returns all plugin-contributed commands in registration order.
func (r *Registry) Commands() []Command {
	return r.commands
}

// DirectiveTypes returns the directive tags plugin sources claim by type,
// for the parser to preserve.
func (r *Registry) DirectiveTypes() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, s := range r.sources {
		if s.DirectiveType == "" {
			continue
		}
		if _, dup := seen[s.DirectiveType]; dup {
			continue
		}
		seen[s.DirectiveType] = struct{}{}
		out = append(out, s.DirectiveType)
	}
	return out
}

// IgnoreMissing returns the union of every plugin's ignore-missing list.
func (r *Registry) IgnoreMissing() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, p := range r.plugins {
		for _, name := range p.IgnoreMissing {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}

// HookError reports a lifecycle hook that failed. Hook failures are fatal:
// they abort the command with no partial-hook isolation.
type HookError struct {
	Plugin string
	Hook   string
	Err    error
}

// Error implements the error interface.
func (e *HookError) Error() string {
	return fmt.Sprintf("plugin %q: %s hook failed: %v", e.Plugin, e.Hook, e.Err)
}

// Unwrap returns the underlying error.
func (e *HookError) Unwrap() error {
	return e.Err
}

// RunOnInit runs every OnInit hook sequentially in registration order,
// stopping at the first failure.
func (r *Registry) RunOnInit(ctx context.Context) error {
	for _, nh := range r.hooks {
		if nh.hooks.OnInit == nil {
			continue
		}
		if err := nh.hooks.OnInit(ctx); err != nil {
			return &HookError{Plugin: nh.plugin, Hook: "onInit", Err: err}
		}
	}
	return nil
}

// RunBeforeSync runs every BeforeSync hook sequentially in registration order.
func (r *Registry) RunBeforeSync(ctx context.Context, app *workspace.App) error {
	for _, nh := range r.hooks {
		if nh.hooks.BeforeSync == nil {
			continue
		}
		if err := nh.hooks.BeforeSync(ctx, app); err != nil {
			return &HookError{Plugin: nh.plugin, Hook: "beforeSync", Err: err}
		}
	}
	return nil
}

// RunAfterSync runs every AfterSync hook sequentially in registration order.
func (r *Registry) RunAfterSync(ctx context.Context, app *workspace.App) error {
	for _, nh := range r.hooks {
		if nh.hooks.AfterSync == nil {
			continue
		}
		if err := nh.hooks.AfterSync(ctx, app); err != nil {
			return &HookError{Plugin: nh.plugin, Hook: "afterSync", Err: err}
		}
	}
	return nil
}
