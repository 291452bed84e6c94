package commands

import (
	"github.com/spf13/cobra"

	"github.com/skiffhq/skiff/cmd/skiff/handlers"
)

// Destroy returns the destroy command.
func Destroy() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Destroy the target environment and all its resources",
		Long: `Destroy removes the environment's servers, firewall and tunnel.

WARNING: This operation is irreversible.

Examples:
  skiff destroy -t preview --slug pr-142
  skiff destroy --yes`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), contextOptions(), yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
