package commands

import (
	"github.com/spf13/cobra"

	"github.com/skiffhq/skiff/cmd/skiff/handlers"
)

// Status returns the status command.
func Status() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the environment's servers and deployment state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Status(cmd.Context(), contextOptions())
		},
	}
}
