package engine

// StepID names one lifecycle step of an engine command.
type StepID string

const (
	StepPreflight  StepID = "preflight"
	StepFirewall   StepID = "firewall"
	StepServer     StepID = "server"
	StepTunnel     StepID = "tunnel"
	StepImage      StepID = "image"
	StepRuntime    StepID = "runtime"
	StepKubeconfig StepID = "kubeconfig"
	StepManifests  StepID = "manifests"
	StepRollout    StepID = "rollout"

	StepServerRemove   StepID = "server.remove"
	StepFirewallRemove StepID = "firewall.remove"
	StepTunnelRemove   StepID = "tunnel.remove"
)

// StepStatus is the status carried by a step event.
type StepStatus string

const (
	StepInProgress StepStatus = "in_progress"
	StepDone       StepStatus = "done"
)

// MessageExists is the sentinel completion message a driver returns when a
// resource already existed and nothing had to be created.
const MessageExists = "exists"

// StepEvent is a discrete lifecycle notification emitted synchronously by a
// running engine command. Events are transient: one instance per emission,
// never persisted.
type StepEvent struct {
	Step    StepID
	Status  StepStatus
	Message string
}

// StepFunc receives step events during a command run.
type StepFunc func(StepEvent)

// StateFunc receives lifecycle state transitions during a command run.
type StateFunc func(prev, next State)
