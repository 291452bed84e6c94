package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiffhq/skiff/internal/errdefs"
)

func validConfig() *Config {
	return &Config{
		App:    "demo",
		Image:  "ghcr.io/acme/demo:latest",
		Token:  "secret",
		Region: "nbg1",
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*Config)
		reason string
	}{
		{
			name:   "valid",
			mutate: func(_ *Config) {},
		},
		{
			name:   "missing app",
			mutate: func(c *Config) { c.App = "" },
			reason: "app is required",
		},
		{
			name:   "uppercase app",
			mutate: func(c *Config) { c.App = "Demo" },
			reason: "lowercase DNS label",
		},
		{
			name:   "app with trailing dash",
			mutate: func(c *Config) { c.App = "demo-" },
			reason: "lowercase DNS label",
		},
		{
			name:   "app too long",
			mutate: func(c *Config) { c.App = strings.Repeat("a", 64) },
			reason: "lowercase DNS label",
		},
		{
			name:   "missing image",
			mutate: func(c *Config) { c.Image = "" },
			reason: "image is required",
		},
		{
			name:   "missing token",
			mutate: func(c *Config) { c.Token = "" },
			reason: "token is required",
		},
		{
			name:   "unknown region",
			mutate: func(c *Config) { c.Region = "us-east-1" },
			reason: `unknown region "us-east-1"`,
		},
		{
			name:   "bad server group name",
			mutate: func(c *Config) { c.Servers = map[string]ServerSpec{"Worker_1": {Count: 1}} },
			reason: "lowercase DNS label",
		},
		{
			name:   "server group count below one",
			mutate: func(c *Config) { c.Servers = map[string]ServerSpec{"worker": {Count: -1}} },
			reason: "count must be at least 1",
		},
		{
			name:   "bad env key",
			mutate: func(c *Config) { c.Env = map[string]string{"1BAD": "x"} },
			reason: `invalid env key "1BAD"`,
		},
		{
			name:   "tunnel enabled without token",
			mutate: func(c *Config) { c.Tunnel = Tunnel{Enabled: true} },
			reason: "tunnel.token is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.reason == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errdefs.IsConfig(err))
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}
