// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Global flags shared by every command that resolves an execution context.
var (
	flagConfig string
	flagFolder string
	flagTarget string
	flagSlug   string
)

// Root returns the root command for the skiff CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "skiff",
		Short:         "Deploy applications to provisioned servers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to the config file (default skiff.yml)")
	cmd.PersistentFlags().StringVarP(&flagFolder, "folder", "f", "", "resolve the config file relative to this folder")
	cmd.PersistentFlags().StringVarP(&flagTarget, "target", "t", "", "target environment: production, staging or preview (default production)")
	cmd.PersistentFlags().StringVar(&flagSlug, "slug", "", "environment slug (required for preview targets)")

	cmd.AddCommand(Init())
	cmd.AddCommand(Deploy())
	cmd.AddCommand(Destroy())
	cmd.AddCommand(Status())
	cmd.AddCommand(Logs())
	cmd.AddCommand(Exec())
	cmd.AddCommand(SSH())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
