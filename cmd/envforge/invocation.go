package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/EnvForge/envforge/pkg/config"
	"github.com/EnvForge/envforge/pkg/plugin"
	"github.com/EnvForge/envforge/pkg/plugin/builtin"
	"github.com/EnvForge/envforge/pkg/schema"
	"github.com/EnvForge/envforge/pkg/workspace"
)

// invocation bundles the per-command state: configuration, workspace and a
// freshly constructed plugin registry. Every command invocation builds its
// own; nothing survives between invocations.
type invocation struct {
	ws          *workspace.Workspace
	cfg         *config.Config
	reg         *plugin.Registry
	interactive bool
}

// newInvocation loads configuration, constructs the registry from the static
// descriptor list, reports (but does not fail on) plugin load errors, and runs
// the onInit hooks.
func newInvocation(cmd *cobra.Command) (*invocation, error) {
	root, _ := cmd.Flags().GetString("workspace")
	configPath, _ := cmd.Flags().GetString("config")
	nonInteractive, _ := cmd.Flags().GetBool("non-interactive")
	noColor, _ := cmd.Flags().GetBool("no-color")

	if noColor {
		pterm.DisableColor()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	reg := plugin.NewRegistry()
	descriptors := builtin.Descriptors(
		cfg.Plugins.Expr,
		cfg.Plugins.Keyring.Enabled,
		cfg.Plugins.Keyring.Service,
	)
	for _, loadErr := range plugin.LoadAll(reg, descriptors) {
		pterm.Warning.Println(loadErr.Error())
	}

	if err := reg.RunOnInit(cmd.Context()); err != nil {
		return nil, err
	}

	return &invocation{
		ws:          workspace.New(root),
		cfg:         cfg,
		reg:         reg,
		interactive: !nonInteractive,
	}, nil
}

// rootSchema parses the shared example file at the workspace root. A missing
// root example is not an error; the workspace simply has no shared variables.
func (inv *invocation) rootSchema() (schema.Schema, error) {
	return inv.parseExample(inv.ws.RootExampleFile(), true)
}

// appSchema builds the full merged schema for one app: root definitions
// first, app overrides and additions applied, plugin ignore-missing names
// dropped entirely.
func (inv *invocation) appSchema(app *workspace.App) (schema.Schema, error) {
	root, err := inv.rootSchema()
	if err != nil {
		return nil, err
	}
	appSchema, err := inv.parseExample(app.ExampleFile(), false)
	if err != nil {
		return nil, err
	}
	return schema.AppSchema(root, appSchema, inv.reg.IgnoreMissing()), nil
}

func (inv *invocation) parseExample(path string, optional bool) (schema.Schema, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && optional {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read example file: %w", err)
	}
	return schema.Parse(string(data), &schema.ParseOptions{
		PluginDirectives: inv.reg.DirectiveTypes(),
	}), nil
}
