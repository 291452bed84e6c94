package engine

import (
	"context"
	"fmt"
)

// Command is one engine command (deploy, destroy, ...). Run mutates the
// command's context in place and emits step events and state transitions
// synchronously during its own execution.
type Command interface {
	Run(ctx context.Context) error
}

// Factory constructs a command for one execution context, wired to a
// step-event sink and a state-change sink.
type Factory func(ec *Context, onStep StepFunc, onState StateFunc) Command

// stepDef binds a step identifier to the driver call that performs it.
type stepDef struct {
	id  StepID
	run func(ctx context.Context, ec *Context) (string, error)
}

// pipeline sequences driver calls into observable steps. Each step emits an
// in_progress event, runs, and emits a done event carrying the driver's
// completion message. The first failing step moves the context to failed
// and aborts the run.
type pipeline struct {
	ec      *Context
	steps   []stepDef
	running State
	settled State
	onStep  StepFunc
	onState StateFunc
}

func (p *pipeline) Run(ctx context.Context) error {
	p.transition(p.running)

	for _, step := range p.steps {
		p.emit(StepEvent{Step: step.id, Status: StepInProgress})

		msg, err := step.run(ctx, p.ec)
		if err != nil {
			p.transition(StateFailed)
			return fmt.Errorf("step %s: %w", step.id, err)
		}

		p.emit(StepEvent{Step: step.id, Status: StepDone, Message: msg})
	}

	p.transition(p.settled)
	return nil
}

func (p *pipeline) emit(ev StepEvent) {
	if p.onStep != nil {
		p.onStep(ev)
	}
}

func (p *pipeline) transition(next State) {
	prev := p.ec.State
	p.ec.State = next
	if p.onState != nil && prev != next {
		p.onState(prev, next)
	}
}

// NewDeploy returns the factory for the deploy command: provision, build,
// apply, then wait for the rollout through the injected waiter.
func NewDeploy(driver Driver, waiter RolloutWaiter) Factory {
	return func(ec *Context, onStep StepFunc, onState StateFunc) Command {
		return &pipeline{
			ec:      ec,
			running: StateProvisioning,
			settled: StateDeployed,
			onStep:  onStep,
			onState: onState,
			steps: []stepDef{
				{StepPreflight, driver.Preflight},
				{StepFirewall, driver.EnsureFirewall},
				{StepServer, driver.EnsureServer},
				{StepTunnel, driver.EnsureTunnel},
				{StepImage, driver.BuildImage},
				{StepRuntime, driver.InstallRuntime},
				{StepKubeconfig, driver.WriteKubeconfig},
				{StepManifests, driver.ApplyManifests},
				{StepRollout, rolloutStep(driver, waiter)},
			},
		}
	}
}

// NewDestroy returns the factory for the destroy command.
func NewDestroy(driver Driver) Factory {
	return func(ec *Context, onStep StepFunc, onState StateFunc) Command {
		return &pipeline{
			ec:      ec,
			running: StateDestroying,
			settled: StateDestroyed,
			onStep:  onStep,
			onState: onState,
			steps: []stepDef{
				{StepServerRemove, driver.RemoveServer},
				{StepFirewallRemove, driver.RemoveFirewall},
				{StepTunnelRemove, driver.RemoveTunnel},
			},
		}
	}
}

// rolloutStep adapts the rollout wait into a pipeline step. The waiter owns
// its own polling loop and live rendering; the step only supplies the pod
// lister and the requested deployment names.
func rolloutStep(driver Driver, waiter RolloutWaiter) func(context.Context, *Context) (string, error) {
	return func(ctx context.Context, ec *Context) (string, error) {
		lister, err := driver.Pods(ec)
		if err != nil {
			return "", err
		}
		deployments := ec.Config.Deployments
		if err := waiter.Wait(ctx, lister, deployments); err != nil {
			return "", err
		}
		return fmt.Sprintf("%d deployment(s) ready", len(deployments)), nil
	}
}
