package commands

import (
	"github.com/spf13/cobra"

	"github.com/skiffhq/skiff/cmd/skiff/handlers"
)

// Deploy returns the deploy command.
//
// Deploy resolves the execution context, runs the engine's deploy command
// (provisioning, image build, manifest apply, rollout wait) and prints the
// final context summary.
func Deploy() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the application to the target environment",
		Long: `Deploy provisions any missing infrastructure, builds and pushes the
application image, applies the workload manifests and waits for the rollout
to become ready.

Examples:
  skiff deploy
  skiff deploy -t staging
  skiff deploy -t preview --slug pr-142`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Deploy(cmd.Context(), contextOptions())
		},
	}
}

// contextOptions collects the global context flags for a handler call.
func contextOptions() handlers.Options {
	return handlers.Options{
		Config: flagConfig,
		Folder: flagFolder,
		Target: flagTarget,
		Slug:   flagSlug,
	}
}
