package handlers

import (
	"context"
	"fmt"
	"strings"
)

// Exec runs an ad-hoc command on the environment's server and prints its
// output. A non-zero remote exit propagates as a CommandError.
func Exec(ctx context.Context, opts Options, server string, args []string) error {
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

	output, err := newRemote(ec).Exec(ctx, strings.Join(args, " "))
	if output != "" {
		fmt.Fprint(stdout, output)
	}
	return err
}
