package commands

import (
	"github.com/spf13/cobra"

	"github.com/skiffhq/skiff/cmd/skiff/handlers"
)

// Exec returns the exec command.
func Exec() *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "exec -- command [args...]",
		Short: "Run a command on the environment's server",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Exec(cmd.Context(), contextOptions(), server, args)
		},
	}

	cmd.Flags().StringVarP(&server, "server", "s", "", "logical server name to connect to")
	return cmd
}
