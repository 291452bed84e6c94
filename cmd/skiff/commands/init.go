package commands

import (
	"github.com/spf13/cobra"

	"github.com/skiffhq/skiff/cmd/skiff/handlers"
)

// Init returns the init command.
func Init() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a skiff.yml through an interactive wizard",
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Init(flagConfig)
		},
	}
}
