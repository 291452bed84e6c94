package handlers

import (
	"context"
	"fmt"
)

// Logs tails the application logs from the environment's server.
func Logs(ctx context.Context, opts Options, server string, tail int) error {
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

	output, err := newRemote(ec).Logs(ctx, ec.Config.App, tail)
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, output)
	return nil
}
