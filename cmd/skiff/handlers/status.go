package handlers

import (
	"context"

	"github.com/skiffhq/skiff/internal/engine"
	"github.com/skiffhq/skiff/internal/ui"
)

// Status shows the environment's server inventory and deployment state.
// State is inferred from the inventory: an environment with at least one
// server is considered deployed, one without any is pending.
func Status(ctx context.Context, opts Options) error {
	target, err := opts.target()
	if err != nil {
		return err
	}

	runner := newRunner(opts)
	runner.Out = stdout

	ec, err := runner.BuildContext(target, opts.Slug)
	if err != nil {
		return err
	}

	servers, err := runner.Inventory(ctx, ec)
	if err != nil {
		return err
	}
	ec.Servers = servers
	if len(servers) > 0 {
		ec.State = engine.StateDeployed
	}
	if primary, ok := servers["primary"]; ok {
		ec.ServerIP = primary.PublicIPv4
	}

	ui.NewFormatter(stdout).Summary(ec)
	return nil
}
