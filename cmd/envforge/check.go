package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EnvForge/envforge/pkg/output"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [app]",
		Short: "Like status, but fail when required variables are missing",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	inv, err := newInvocation(cmd)
	if err != nil {
		return err
	}

	apps, err := inv.selectApps(args)
	if err != nil {
		return err
	}

	reporter := output.NewReporter(nil)
	var failing []string
	for _, app := range apps {
		result, err := inv.reconcileApp(app)
		if err != nil {
			return err
		}
		reporter.Reconciliation(result)
		if !result.Clean() {
			failing = append(failing, app.Name)
		}
	}

	if len(failing) > 0 {
		return fmt.Errorf("required variables missing in: %v", failing)
	}
	return nil
}
