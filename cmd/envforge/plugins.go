package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newPluginsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List loaded plugins and what they contribute",
		Args:  cobra.NoArgs,
		RunE:  runPlugins,
	}
}

func runPlugins(cmd *cobra.Command, args []string) error {
	inv, err := newInvocation(cmd)
	if err != nil {
		return err
	}

	plugins := inv.reg.Plugins()
	if len(plugins) == 0 {
		pterm.Info.Println("no plugins loaded")
		return nil
	}

	rows := pterm.TableData{{"Name", "Version", "Sources", "Providers", "Commands", "Hooks"}}
	for _, p := range plugins {
		hooks := "no"
		if p.Hooks != nil {
			hooks = "yes"
		}
		rows = append(rows, []string{
			p.Name,
			p.Version,
			pterm.Sprintf("%d", len(p.Sources)),
			pterm.Sprintf("%d", len(p.DeploymentProviders)),
			pterm.Sprintf("%d", len(p.Commands)),
			hooks,
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
