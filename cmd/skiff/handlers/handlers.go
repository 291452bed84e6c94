// Package handlers implements the business logic for CLI commands.
//
// Handlers are framework-agnostic and can be tested independently of the
// CLI framework. External collaborators (the deployment engine driver, the
// remote runner, the interactive shell) are reached through factory function
// variables so tests can inject fakes.
package handlers

import (
	"io"
	"os"

	"github.com/skiffhq/skiff/internal/engine"
	sshp "github.com/skiffhq/skiff/internal/platform/ssh"
	"github.com/skiffhq/skiff/internal/run"
)

// Options carries the global context flags of one command invocation.
type Options struct {
	Config string
	Folder string
	Target string
	Slug   string
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// linkedDriver returns the deployment engine's driver.
	linkedDriver = engine.LinkedDriver

	// newRunner creates the context runner for one invocation.
	newRunner = func(opts Options) *run.Runner {
		return run.NewRunner(opts.Config, opts.Folder)
	}

	// newRemote creates the remote exec/log client for a resolved context.
	newRemote = func(ec *engine.Context) engine.RemoteRunner {
		return sshp.NewRunner(ec.ServerIP, ec.Config.User, ec.Keys.PrivateKey)
	}

	// stdout is the stream presenters render to.
	stdout io.Writer = os.Stdout
)

// target parses the target flag of one invocation.
func (o Options) target() (engine.Target, error) {
	return engine.ParseTarget(o.Target)
}
