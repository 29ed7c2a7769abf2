package main

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/EnvForge/envforge/pkg/envfile"
	"github.com/EnvForge/envforge/pkg/output"
	"github.com/EnvForge/envforge/pkg/resolve"
)

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync <app>",
		Short: "Resolve an app's schema and write missing values to its env file",
		Args:  cobra.ExactArgs(1),
		RunE:  runSync,
	}
}

func runSync(cmd *cobra.Command, args []string) error {
	inv, err := newInvocation(cmd)
	if err != nil {
		return err
	}

	app, err := inv.ws.App(args[0])
	if err != nil {
		return err
	}

	if err := inv.reg.RunBeforeSync(cmd.Context(), app); err != nil {
		return err
	}

	merged, err := inv.appSchema(app)
	if err != nil {
		return err
	}

	actual, err := envfile.Load(app.EnvFile())
	if err != nil {
		return err
	}

	rctx := resolve.NewContext(app, inv.cfg, inv.ws.Root)
	rctx.Interactive = inv.interactive
	if inv.interactive {
		noColor, _ := cmd.Flags().GetBool("no-color")
		rctx.Prompter = resolve.NewTermPrompter(noColor)
	}
	for name, value := range actual.Values {
		rctx.CurrentValues[name] = value
	}

	var spin *spinner.Spinner
	if !inv.interactive {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		spin.Suffix = " resolving " + app.Name
		spin.Start()
	}

	pipeline := resolve.NewPipeline(inv.reg.Sources()...)
	resolutions, err := pipeline.Run(merged, rctx)

	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	for _, res := range resolutions {
		if res.Result.Skipped {
			continue
		}
		actual.Set(res.Definition.Name, res.Result.Value)
	}
	if err := actual.Write(""); err != nil {
		return err
	}

	output.NewReporter(nil).ResolutionSummary(resolutions)

	return inv.reg.RunAfterSync(cmd.Context(), app)
}
