package ui

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/skiffhq/skiff/internal/engine"
)

// Formatter renders structured results to one stream, colorized when the
// stream is interactive.
type Formatter struct {
	out         io.Writer
	interactive bool
}

// NewFormatter creates a formatter for out, detecting interactivity once.
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out, interactive: Interactive(out)}
}

// Summary prints the final context summary: state, slug (preview only),
// prefix, primary server address when resolved, and the server status table
// when inventory is known.
func (f *Formatter) Summary(ec *engine.Context) {
	fmt.Fprintf(f.out, "State:  %s\n", f.paint(f.stateStyle(ec.State), string(ec.State)))
	if ec.Target == engine.TargetPreview {
		fmt.Fprintf(f.out, "Slug:   %s\n", ec.Slug)
	}
	fmt.Fprintf(f.out, "Prefix: %s\n", ec.Prefix())
	if ec.ServerIP != "" {
		fmt.Fprintf(f.out, "Server: %s\n", ec.ServerIP)
	}

	if len(ec.Servers) > 0 {
		names := make([]string, 0, len(ec.Servers))
		for name := range ec.Servers {
			names = append(names, name)
		}
		sort.Strings(names)

		servers := make([]engine.Server, 0, len(names))
		for _, name := range names {
			servers = append(servers, ec.Servers[name])
		}
		fmt.Fprintln(f.out)
		f.StatusTable(servers)
	}
}

// StatusTable prints the server inventory as a table. An empty inventory
// produces no output at all, not even headers.
func (f *Formatter) StatusTable(servers []engine.Server) {
	rows := make([][]string, 0, len(servers))
	for _, s := range servers {
		rows = append(rows, []string{s.Name, s.PublicIPv4, s.Status, s.InstanceType})
	}
	for _, line := range tableLines([]string{"NAME", "IP", "STATUS", "TYPE"}, rows) {
		fmt.Fprintln(f.out, line)
	}
}

// StateChange prints one lifecycle transition line.
func (f *Formatter) StateChange(prev, next engine.State) {
	fmt.Fprintf(f.out, "State: %s -> %s\n",
		f.paint(f.stateStyle(prev), string(prev)),
		f.paint(f.stateStyle(next), string(next)))
}

// Error prints a single formatted error line.
func (f *Formatter) Error(message string) {
	fmt.Fprintf(f.out, "%s %s\n", f.paint(redStyle, "Error:"), message)
}

func (f *Formatter) stateStyle(s engine.State) lipgloss.Style {
	if style, ok := stateStyles[s]; ok {
		return style
	}
	return dimStyle
}

func (f *Formatter) paint(style lipgloss.Style, s string) string {
	if !f.interactive {
		return s
	}
	return style.Render(s)
}
