package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <command> [args...]",
		Short: "Run a plugin-contributed command",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runPluginCommand,
	}
}

func runPluginCommand(cmd *cobra.Command, args []string) error {
	inv, err := newInvocation(cmd)
	if err != nil {
		return err
	}

	name := args[0]
	for _, c := range inv.reg.Commands() {
		if c.Name == name {
			return c.Run(cmd.Context(), args[1:])
		}
	}
	return fmt.Errorf("no plugin provides command %q", name)
}
