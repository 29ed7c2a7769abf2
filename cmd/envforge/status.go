package main

import (
	"github.com/spf13/cobra"

	"github.com/EnvForge/envforge/pkg/envfile"
	"github.com/EnvForge/envforge/pkg/output"
	"github.com/EnvForge/envforge/pkg/reconcile"
	"github.com/EnvForge/envforge/pkg/workspace"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [app]",
		Short: "Show how each app's env file compares to its schema",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	inv, err := newInvocation(cmd)
	if err != nil {
		return err
	}

	apps, err := inv.selectApps(args)
	if err != nil {
		return err
	}

	reporter := output.NewReporter(nil)
	for _, app := range apps {
		result, err := inv.reconcileApp(app)
		if err != nil {
			return err
		}
		reporter.Reconciliation(result)
	}
	return nil
}

// selectApps returns either the single named app or every app in the workspace.
func (inv *invocation) selectApps(args []string) ([]*workspace.App, error) {
	if len(args) == 1 {
		app, err := inv.ws.App(args[0])
		if err != nil {
			return nil, err
		}
		return []*workspace.App{app}, nil
	}
	return inv.ws.Apps()
}

// reconcileApp classifies one app's env file against its merged schema.
func (inv *invocation) reconcileApp(app *workspace.App) (*reconcile.Result, error) {
	merged, err := inv.appSchema(app)
	if err != nil {
		return nil, err
	}

	actual, err := envfile.Load(app.EnvFile())
	if err != nil {
		return nil, err
	}

	shared, err := envfile.Load(inv.ws.RootEnvFile())
	if err != nil {
		return nil, err
	}

	root, err := inv.rootSchema()
	if err != nil {
		return nil, err
	}

	reconciler := reconcile.New(inv.cfg.DeprecatedVars)
	return reconciler.CompareSchemaToActual(merged, actual, app, shared.Values, root.Names()), nil
}
