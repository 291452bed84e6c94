package engine

import (
	"fmt"

	"github.com/skiffhq/skiff/internal/config"
	"github.com/skiffhq/skiff/internal/errdefs"
)

// Target is the environment a command operates against.
type Target string

const (
	TargetProduction Target = "production"
	TargetStaging    Target = "staging"
	// TargetPreview is the ephemeral target. Preview contexts carry a slug
	// (typically a branch or PR identifier) that scopes every resource name.
	TargetPreview Target = "preview"
)

// ParseTarget parses a target name. An empty string defaults to production.
func ParseTarget(s string) (Target, error) {
	switch s {
	case "", string(TargetProduction):
		return TargetProduction, nil
	case string(TargetStaging):
		return TargetStaging, nil
	case string(TargetPreview):
		return TargetPreview, nil
	default:
		return "", &errdefs.ConfigError{Reason: fmt.Sprintf("unknown target %q (expected production, staging or preview)", s)}
	}
}

// State is the lifecycle state of a deployment context.
type State string

const (
	StatePending      State = "pending"
	StateProvisioning State = "provisioning"
	StateDeployed     State = "deployed"
	StateDestroying   State = "destroying"
	StateDestroyed    State = "destroyed"
	StateFailed       State = "failed"
)

// Server describes one provisioned server as reported by the compute
// inventory provider.
type Server struct {
	Name         string
	PublicIPv4   string
	Status       string
	InstanceType string
}

// KeyPair holds the SSH credentials used to reach provisioned servers.
type KeyPair struct {
	PrivateKey []byte
	PublicKey  []byte
}

// Context is the unit of state passed into and returned from an engine
// command. It is created once per command invocation and mutated in place
// by the engine while the command runs; nothing mutates it concurrently.
type Context struct {
	Target  Target
	Slug    string
	Config  *config.Config
	Branch  string
	State   State
	Servers map[string]Server
	// ServerIP is the primary server's public address, set once resolved
	// (by the engine during deploy, or by the runner for operational
	// commands).
	ServerIP string
	Keys     *KeyPair
}

// NewContext creates a pending context for one command invocation.
func NewContext(cfg *config.Config, target Target, slug string) (*Context, error) {
	if _, err := Prefix(cfg.App, target, slug); err != nil {
		return nil, err
	}
	return &Context{
		Target:  target,
		Slug:    slug,
		Config:  cfg,
		State:   StatePending,
		Servers: make(map[string]Server),
	}, nil
}

// Prefix returns the resource-name prefix for this context.
func (c *Context) Prefix() string {
	// NewContext validated the triple, so this cannot fail here.
	prefix, _ := Prefix(c.Config.App, c.Target, c.Slug)
	return prefix
}

// Prefix derives the resource-naming root from application identity, target
// and slug. It is a pure function: equal inputs always yield equal output.
// Preview targets require a non-empty slug.
func Prefix(app string, target Target, slug string) (string, error) {
	if target == TargetPreview {
		if slug == "" {
			return "", &errdefs.NotFoundError{Resource: "preview slug (pass --slug to address a preview environment)"}
		}
		return fmt.Sprintf("%s-%s-%s", app, target, slug), nil
	}
	return fmt.Sprintf("%s-%s", app, target), nil
}
