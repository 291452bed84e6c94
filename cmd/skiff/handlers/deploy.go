package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/skiffhq/skiff/internal/engine"
	"github.com/skiffhq/skiff/internal/ui"
)

// Deploy runs the engine's deploy command against the target environment
// and prints the final context summary.
func Deploy(ctx context.Context, opts Options) error {
	target, err := opts.target()
	if err != nil {
		return err
	}

	driver, err := linkedDriver()
	if err != nil {
		return err
	}

	runner := newRunner(opts)
	runner.Out = stdout

	waiter := ui.NewWaiter(stdout)
	ec, err := runner.Execute(ctx, engine.NewDeploy(driver, waiter), target, opts.Slug)
	if err != nil {
		return err
	}

	log.Printf("deploy complete for %s", ec.Prefix())
	fmt.Fprintln(stdout)
	ui.NewFormatter(stdout).Summary(ec)
	return nil
}
