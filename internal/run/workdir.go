package run

import (
	"os"

	"github.com/skiffhq/skiff/internal/errdefs"
)

// withWorkingDir runs fn with the process working directory set to dir and
// restores the original directory on every exit path, including panics.
// The working directory is process-wide shared state; this is the only place
// in the runtime allowed to change it. An empty dir runs fn in place.
func withWorkingDir(dir string, fn func() error) error {
	if dir == "" {
		return fn()
	}

	orig, err := os.Getwd()
	if err != nil {
		return &errdefs.ConfigError{Reason: "failed to determine working directory", Err: err}
	}
	if err := os.Chdir(dir); err != nil {
		return &errdefs.ConfigError{Reason: "failed to enter folder " + dir, Err: err}
	}
	defer func() {
		_ = os.Chdir(orig)
	}()

	return fn()
}
