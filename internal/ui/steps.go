package ui

import (
	"fmt"
	"io"

	"github.com/skiffhq/skiff/internal/engine"
)

// doneText resolves the completion text of a step: a fixed literal, a
// function of the driver's completion message, or an "existing" variant for
// the MessageExists sentinel. Resolution happens in one place, resolve().
type doneText struct {
	fixed       string
	fromMessage func(string) string
	existing    string
}

func (d doneText) resolve(message string) string {
	if message == engine.MessageExists && d.existing != "" {
		return d.existing
	}
	if d.fromMessage != nil {
		return d.fromMessage(message)
	}
	return d.fixed
}

// stepPresentation is one entry of the static event->presentation mapping.
// Stream steps frame the engine's own output instead of rendering a
// progress line; live steps have collaborator-rendered output below their
// progress line, so that line is closed immediately instead of staying open
// for an in-place overwrite; skip steps render nothing.
type stepPresentation struct {
	label    string
	progress string
	done     doneText
	stream   bool
	live     bool
	skip     bool
}

// presentations is loaded once at process start and never mutated.
var presentations = map[engine.StepID]stepPresentation{
	engine.StepPreflight: {skip: true},
	engine.StepFirewall: {
		label:    "Firewall",
		progress: "creating",
		done:     doneText{fixed: "created", existing: "already exists"},
	},
	engine.StepServer: {
		label:    "Server",
		progress: "provisioning",
		done: doneText{
			existing: "already exists",
			fromMessage: func(msg string) string {
				if msg == "" {
					return "provisioned"
				}
				return "provisioned at " + msg
			},
		},
	},
	engine.StepTunnel: {
		label:    "Tunnel",
		progress: "configuring",
		done:     doneText{fixed: "configured", existing: "already configured"},
	},
	engine.StepImage:    {label: "Building image", stream: true},
	engine.StepRuntime: {
		label:    "K3s",
		progress: "installing",
		done:     doneText{fixed: "installed", existing: "already installed"},
	},
	engine.StepKubeconfig: {
		label:    "Kubeconfig",
		progress: "fetching",
		done:     doneText{fixed: "saved"},
	},
	engine.StepManifests: {label: "Applying manifests", stream: true},
	engine.StepRollout: {
		label:    "Rollout",
		progress: "waiting for readiness",
		// The waiter renders its live pod table under this line.
		live: true,
		done: doneText{
			fromMessage: func(msg string) string {
				if msg == "" {
					return "complete"
				}
				return msg
			},
		},
	},
	engine.StepServerRemove: {
		label:    "Server",
		progress: "deleting",
		done:     doneText{fixed: "deleted"},
	},
	engine.StepFirewallRemove: {
		label:    "Firewall",
		progress: "deleting",
		done:     doneText{fixed: "deleted"},
	},
	engine.StepTunnelRemove: {
		label:    "Tunnel",
		progress: "removing",
		done:     doneText{fixed: "removed"},
	},
}

// StepPresenter translates step events into terminal output. On an
// interactive stream the currently-open progress line is overwritten in
// place by its completion; on a plain stream every event appends a line.
type StepPresenter struct {
	out         io.Writer
	interactive bool
	// open is the label of the progress line currently awaiting completion.
	open string
}

// NewStepPresenter creates a presenter for out, detecting interactivity once.
func NewStepPresenter(out io.Writer) *StepPresenter {
	return &StepPresenter{out: out, interactive: Interactive(out)}
}

// Handle renders one step event. Unknown and skip-flagged steps render
// nothing.
func (p *StepPresenter) Handle(ev engine.StepEvent) {
	pres, ok := presentations[ev.Step]
	if !ok || pres.skip {
		return
	}

	if pres.stream {
		p.finalize()
		if ev.Status == engine.StepInProgress {
			fmt.Fprintf(p.out, "\n%s...\n", pres.label)
		} else {
			fmt.Fprintln(p.out)
		}
		return
	}

	switch ev.Status {
	case engine.StepInProgress:
		p.finalize()
		if p.interactive && !pres.live {
			fmt.Fprintf(p.out, "%s: %s...", pres.label, pres.progress)
			p.open = pres.label
		} else {
			fmt.Fprintf(p.out, "%s: %s...\n", pres.label, pres.progress)
		}
	case engine.StepDone:
		text := pres.done.resolve(ev.Message)
		if p.interactive && p.open == pres.label {
			// Overwrite the open progress line in place.
			fmt.Fprintf(p.out, "\r\033[K%s: %s\n", pres.label, text)
			p.open = ""
			return
		}
		p.finalize()
		fmt.Fprintf(p.out, "%s: %s\n", pres.label, text)
	}
}

// finalize closes an open progress line so the next write starts on a fresh
// line.
func (p *StepPresenter) finalize() {
	if p.interactive && p.open != "" {
		fmt.Fprintln(p.out)
		p.open = ""
	}
}
