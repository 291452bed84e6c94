package config

import (
	"fmt"
	"regexp"

	"github.com/skiffhq/skiff/internal/errdefs"
)

// ValidRegions contains the compute provider locations skiff deploys to.
// https://docs.hetzner.com/cloud/general/locations/
var ValidRegions = map[string]bool{
	"nbg1": true, // Nuremberg, Germany
	"fsn1": true, // Falkenstein, Germany
	"hel1": true, // Helsinki, Finland
	"ash":  true, // Ashburn, USA
	"hil":  true, // Hillsboro, USA
	"sin":  true, // Singapore
}

// appNamePattern: resource names derive from the app name, so it must be a
// valid DNS label.
var appNamePattern = regexp.MustCompile(`^[a-z]([a-z0-9-]*[a-z0-9])?$`)

var envKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the configuration shape and fails fast with a ConfigError
// describing the first problem found.
func (c *Config) Validate() error {
	if c.App == "" {
		return &errdefs.ConfigError{Reason: "app is required"}
	}
	if !appNamePattern.MatchString(c.App) || len(c.App) > 63 {
		return &errdefs.ConfigError{Reason: fmt.Sprintf("app %q must be a lowercase DNS label", c.App)}
	}
	if c.Image == "" {
		return &errdefs.ConfigError{Reason: "image is required"}
	}
	if c.Token == "" {
		return &errdefs.ConfigError{Reason: "token is required (set it to ${HCLOUD_TOKEN})"}
	}
	if !ValidRegions[c.Region] {
		return &errdefs.ConfigError{Reason: fmt.Sprintf("unknown region %q", c.Region)}
	}

	for name, spec := range c.Servers {
		if !appNamePattern.MatchString(name) {
			return &errdefs.ConfigError{Reason: fmt.Sprintf("server group %q must be a lowercase DNS label", name)}
		}
		if spec.Count < 1 {
			return &errdefs.ConfigError{Reason: fmt.Sprintf("server group %q count must be at least 1", name)}
		}
	}

	for key := range c.Env {
		if !envKeyPattern.MatchString(key) {
			return &errdefs.ConfigError{Reason: fmt.Sprintf("invalid env key %q", key)}
		}
	}

	if c.Tunnel.Enabled && c.Tunnel.Token == "" {
		return &errdefs.ConfigError{Reason: "tunnel.token is required when tunnel is enabled"}
	}

	return nil
}
