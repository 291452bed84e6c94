// Package engine defines the contract between the skiff runtime and the
// deployment engine: the execution context threaded through one command
// invocation, the step-event and lifecycle-state types emitted during a run,
// the Driver interface the engine implements, and the deploy/destroy
// pipelines that sequence driver calls into observable steps.
//
// The runtime owns orchestration and presentation only. Provisioning,
// manifest generation, tunnel management and runtime installation are
// performed by the Driver implementation, which is linked in by the engine
// module at build time via RegisterDriver.
package engine
