// Package main implements the envforge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set at build time
	version = "0.3.0"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envforge",
		Short: "EnvForge - Manage env-variable schemas across a multi-app workspace",
		Long: `EnvForge reads annotated example files (a shared one at the workspace root
plus one per app), merges them into a single variable schema, and resolves or
reconciles that schema against each app's actual env file.`,
		Version:      version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringP("workspace", "w", ".", "Workspace root directory")
	cmd.PersistentFlags().String("config", "", "Config file path (default: XDG config home)")
	cmd.PersistentFlags().Bool("non-interactive", false, "Never prompt; degrade prompts to placeholders")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	cmd.AddCommand(newSyncCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newPluginsCmd())
	cmd.AddCommand(newRunCmd())

	return cmd
}
