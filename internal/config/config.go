// Package config loads, interpolates and validates the skiff.yml
// configuration file.
package config

// Config is the declarative description of one deployable application.
// A single Config is owned exclusively by the execution context built from
// it; nothing shares it across command invocations.
type Config struct {
	// App is the application name. It roots every resource name.
	App string `yaml:"app"`
	// Image is the container image reference to deploy.
	Image string `yaml:"image"`
	// Token is the compute provider API token, usually supplied as
	// ${HCLOUD_TOKEN} and resolved during interpolation.
	Token string `yaml:"token"`

	Region     string `yaml:"region"`
	ServerType string `yaml:"server_type"`
	Domain     string `yaml:"domain"`
	User       string `yaml:"user"`
	SSHDir     string `yaml:"ssh_dir"`
	Namespace  string `yaml:"namespace"`

	// EnvFile is an optional KEY=VALUE file applied to the process
	// environment before interpolation, resolved relative to the config
	// file's directory.
	EnvFile string            `yaml:"env_file"`
	Env     map[string]string `yaml:"env"`

	// Servers declares additional logical server groups beyond the primary
	// server, keyed by logical name ("worker-1" becomes <prefix>-worker-1).
	Servers map[string]ServerSpec `yaml:"servers"`

	// Deployments lists the workload names the rollout phase waits on.
	// Defaults to the application name.
	Deployments []string `yaml:"deployments"`

	Registry Registry `yaml:"registry"`
	Tunnel   Tunnel   `yaml:"tunnel"`
}

// ServerSpec describes one logical server group.
type ServerSpec struct {
	Type  string `yaml:"type"`
	Count int    `yaml:"count"`
}

// Registry holds credentials for the image registry the engine pushes to.
type Registry struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Tunnel configures the ingress tunnel the engine manages.
type Tunnel struct {
	Enabled bool   `yaml:"enabled"`
	Token   string `yaml:"token"`
}

// applyDefaults fills optional fields the way the engine expects them.
func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = "nbg1"
	}
	if c.ServerType == "" {
		c.ServerType = "cpx11"
	}
	if c.User == "" {
		c.User = "root"
	}
	if c.Namespace == "" {
		c.Namespace = "default"
	}
	if len(c.Deployments) == 0 && c.App != "" {
		c.Deployments = []string{c.App}
	}
	for name, spec := range c.Servers {
		if spec.Type == "" {
			spec.Type = c.ServerType
		}
		if spec.Count == 0 {
			spec.Count = 1
		}
		c.Servers[name] = spec
	}
}
