package commands

import (
	"github.com/spf13/cobra"

	"github.com/skiffhq/skiff/cmd/skiff/handlers"
)

// SSH returns the ssh command.
func SSH() *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "ssh",
		Short: "Open an interactive shell on the environment's server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.SSH(cmd.Context(), contextOptions(), server)
		},
	}

	cmd.Flags().StringVarP(&server, "server", "s", "", "logical server name to connect to")
	return cmd
}
