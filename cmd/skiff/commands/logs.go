package commands

import (
	"github.com/spf13/cobra"

	"github.com/skiffhq/skiff/cmd/skiff/handlers"
)

// Logs returns the logs command.
func Logs() *cobra.Command {
	var (
		server string
		tail   int
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Tail the application logs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Logs(cmd.Context(), contextOptions(), server, tail)
		},
	}

	cmd.Flags().StringVarP(&server, "server", "s", "", "logical server name to connect to")
	cmd.Flags().IntVarP(&tail, "tail", "n", 100, "number of log lines to show")
	return cmd
}
