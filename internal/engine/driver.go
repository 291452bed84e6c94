package engine

import (
	"context"
	"sync"

	"github.com/skiffhq/skiff/internal/errdefs"
)

// PodStatus is one pod's readiness snapshot as reported by the pod-status
// provider on a poll tick. Snapshots are consumed and discarded.
type PodStatus struct {
	Name  string
	App   string // deployment label the pod belongs to
	Ready int    // ready containers
	Total int    // total containers
	Phase string
	// IsReady is true when the pod is Running and its Ready condition holds.
	IsReady bool
}

// PodLister provides the current pod snapshot for the rollout phase.
type PodLister interface {
	GetPods(ctx context.Context) ([]PodStatus, error)
}

// Compute lists the provisioned server inventory.
type Compute interface {
	ListServers(ctx context.Context) ([]Server, error)
}

// KeySource loads the SSH credentials used to reach servers.
type KeySource interface {
	ReadSSHKeys() (*KeyPair, error)
}

// RemoteRunner executes commands and tails logs on a remote server.
type RemoteRunner interface {
	Exec(ctx context.Context, command string) (string, error)
	Logs(ctx context.Context, deployment string, tail int) (string, error)
}

// RolloutWaiter blocks until every named deployment is ready or a deadline
// elapses. The ui package provides the terminal-rendering implementation.
type RolloutWaiter interface {
	Wait(ctx context.Context, lister PodLister, deployments []string) error
}

// Driver is the deployment engine's half of the contract. Each step method
// performs one lifecycle step against real infrastructure and returns a
// short completion message ("1.2.3.4" for a provisioned server, or
// MessageExists when the resource already existed).
//
// BuildImage and ApplyManifests stream their own output to the terminal
// while running; the runtime frames that output but does not own it.
type Driver interface {
	Preflight(ctx context.Context, ec *Context) (string, error)
	EnsureFirewall(ctx context.Context, ec *Context) (string, error)
	EnsureServer(ctx context.Context, ec *Context) (string, error)
	EnsureTunnel(ctx context.Context, ec *Context) (string, error)
	BuildImage(ctx context.Context, ec *Context) (string, error)
	InstallRuntime(ctx context.Context, ec *Context) (string, error)
	WriteKubeconfig(ctx context.Context, ec *Context) (string, error)
	ApplyManifests(ctx context.Context, ec *Context) (string, error)
	// Pods returns the pod-status provider for the rollout phase.
	Pods(ec *Context) (PodLister, error)

	RemoveServer(ctx context.Context, ec *Context) (string, error)
	RemoveFirewall(ctx context.Context, ec *Context) (string, error)
	RemoveTunnel(ctx context.Context, ec *Context) (string, error)
}

var (
	driverMu     sync.Mutex
	linkedDriver Driver
)

// RegisterDriver installs the deployment engine's driver. The engine module
// calls this from an init function; calling it twice panics.
func RegisterDriver(d Driver) {
	driverMu.Lock()
	defer driverMu.Unlock()
	if linkedDriver != nil {
		panic("engine: driver already registered")
	}
	linkedDriver = d
}

// LinkedDriver returns the registered driver, or a ConfigError when the
// binary was built without a deployment engine.
func LinkedDriver() (Driver, error) {
	driverMu.Lock()
	defer driverMu.Unlock()
	if linkedDriver == nil {
		return nil, &errdefs.ConfigError{Reason: "no deployment engine linked into this binary"}
	}
	return linkedDriver, nil
}
