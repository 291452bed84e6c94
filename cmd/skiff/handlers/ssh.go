package handlers

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// openShell spawns the system ssh client (replaced in tests).
var openShell = func(ctx context.Context, user, host string) error {
	// #nosec G204 -- user and host come from resolved inventory, not raw input
	cmd := exec.CommandContext(ctx, "ssh", fmt.Sprintf("%s@%s", user, host))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// SSH opens an interactive shell on the environment's server.
func SSH(ctx context.Context, opts Options, server string) error {
	target, err := opts.target()
	if err != nil {
		return err
	}

	runner := newRunner(opts)
	runner.Out = stdout

	ec, err := runner.BuildOperationalContext(ctx, target, opts.Slug, server)
	if err != nil {
		return err
	}

	return openShell(ctx, ec.Config.User, ec.ServerIP)
}
