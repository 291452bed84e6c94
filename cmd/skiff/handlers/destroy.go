package handlers

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/skiffhq/skiff/internal/engine"
	"github.com/skiffhq/skiff/internal/ui"
)

// confirmDestroy asks for confirmation on stdin (replaced in tests).
var confirmDestroy = func(prefix string) (bool, error) {
	fmt.Fprintf(os.Stderr, "Destroy %s and all its resources? This cannot be undone. [y/N] ", prefix)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

// Destroy tears down the target environment after confirmation.
func Destroy(ctx context.Context, opts Options, yes bool) error {
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

	if !yes {
		// Resolve the prefix first so the prompt names what is at stake.
		ec, err := runner.BuildContext(target, opts.Slug)
		if err != nil {
			return err
		}
		ok, err := confirmDestroy(ec.Prefix())
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(stdout, "Aborted.")
			return nil
		}
	}

	ec, err := runner.Execute(ctx, engine.NewDestroy(driver), target, opts.Slug)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout)
	ui.NewFormatter(stdout).Summary(ec)
	return nil
}
