// Package ui renders engine progress and results to a terminal: the step
// presenter, the rollout waiter and the output formatter. Every component
// takes the interactive-vs-plain decision from one capability check at
// construction time and selects an in-place or append-only renderer from it.
package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Interactive reports whether w is an interactive terminal. The result is
// captured once per presenter; it is never re-derived per write.
func Interactive(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
