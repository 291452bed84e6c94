package ui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/skiffhq/skiff/internal/engine"
	"github.com/skiffhq/skiff/internal/errdefs"
)

const (
	defaultRolloutTimeout  = 5 * time.Minute
	defaultRolloutInterval = 2 * time.Second
)

// Waiter polls a pod-status provider until every requested deployment is
// ready or the deadline elapses, rendering a live status table. Each tick is
// fetch, render, evaluate, then sleep; there is exactly one poller per wait.
type Waiter struct {
	out         io.Writer
	interactive bool

	Timeout  time.Duration
	Interval time.Duration

	renderedLines int
}

// NewWaiter creates a waiter for out with the default deadline and poll
// interval, detecting interactivity once.
func NewWaiter(out io.Writer) *Waiter {
	return &Waiter{
		out:         out,
		interactive: Interactive(out),
		Timeout:     defaultRolloutTimeout,
		Interval:    defaultRolloutInterval,
	}
}

// Wait blocks until, simultaneously, every requested deployment has at least
// one matching pod and all matching pods report ready. Partial readiness
// never satisfies the wait. On deadline it fails with a TimeoutError
// enumerating every still-unready pod.
func (w *Waiter) Wait(ctx context.Context, lister engine.PodLister, deployments []string) error {
	deadline := time.Now().Add(w.Timeout)

	for {
		pods, err := lister.GetPods(ctx)
		if err != nil {
			return err
		}

		matched := filterPods(pods, deployments)
		w.render(matched)

		if allReady(matched, deployments) {
			return nil
		}

		if !time.Now().Before(deadline) {
			return &errdefs.TimeoutError{Unready: unreadyPods(matched)}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.Interval):
		}
	}
}

// filterPods keeps pods whose deployment label contains one of the requested
// names. Substring matching means a name that prefixes another deployment's
// name ("web" vs "web-canary") matches both; callers pick distinct names.
func filterPods(pods []engine.PodStatus, deployments []string) []engine.PodStatus {
	var matched []engine.PodStatus
	for _, pod := range pods {
		for _, name := range deployments {
			if strings.Contains(pod.App, name) {
				matched = append(matched, pod)
				break
			}
		}
	}
	return matched
}

// allReady holds when every requested deployment has at least one matching
// pod and no matching pod is unready.
func allReady(pods []engine.PodStatus, deployments []string) bool {
	for _, name := range deployments {
		found := false
		for _, pod := range pods {
			if strings.Contains(pod.App, name) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, pod := range pods {
		if !pod.IsReady {
			return false
		}
	}
	return len(deployments) > 0
}

func unreadyPods(pods []engine.PodStatus) []errdefs.UnreadyPod {
	var unready []errdefs.UnreadyPod
	for _, pod := range pods {
		if !pod.IsReady {
			unready = append(unready, errdefs.UnreadyPod{Name: pod.Name, Phase: pod.Phase})
		}
	}
	return unready
}

// render prints the current snapshot as a table, overwriting the previous
// render in place on an interactive stream and appending otherwise.
func (w *Waiter) render(pods []engine.PodStatus) {
	rows := make([][]string, 0, len(pods))
	for _, pod := range pods {
		rows = append(rows, []string{pod.Name, fmt.Sprintf("%d/%d", pod.Ready, pod.Total), pod.Phase})
	}
	lines := tableLines([]string{"NAME", "READY", "STATUS"}, rows)

	if w.interactive && w.renderedLines > 0 {
		fmt.Fprintf(w.out, "\033[%dA", w.renderedLines)
	}
	for _, line := range lines {
		if w.interactive {
			fmt.Fprintf(w.out, "\r%s\033[K\n", line)
		} else {
			fmt.Fprintln(w.out, line)
		}
	}
	// Clear leftover lines from a previous, taller render.
	for i := len(lines); w.interactive && i < w.renderedLines; i++ {
		fmt.Fprint(w.out, "\r\033[K\n")
	}
	w.renderedLines = len(lines)
}
