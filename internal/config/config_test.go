package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	t.Parallel()
	cfg := &Config{App: "demo", Image: "ghcr.io/acme/demo", Token: "tok"}
	cfg.applyDefaults()

	assert.Equal(t, "nbg1", cfg.Region)
	assert.Equal(t, "cpx11", cfg.ServerType)
	assert.Equal(t, "root", cfg.User)
	assert.Equal(t, "default", cfg.Namespace)
	assert.Equal(t, []string{"demo"}, cfg.Deployments)
}

func TestApplyDefaultsPreservesExisting(t *testing.T) {
	t.Parallel()
	cfg := &Config{
		App:         "demo",
		Region:      "hel1",
		ServerType:  "cax21",
		User:        "deploy",
		Namespace:   "apps",
		Deployments: []string{"web", "worker"},
	}
	cfg.applyDefaults()

	assert.Equal(t, "hel1", cfg.Region)
	assert.Equal(t, "cax21", cfg.ServerType)
	assert.Equal(t, "deploy", cfg.User)
	assert.Equal(t, "apps", cfg.Namespace)
	assert.Equal(t, []string{"web", "worker"}, cfg.Deployments)
}

func TestApplyDefaultsServerGroups(t *testing.T) {
	t.Parallel()
	cfg := &Config{
		App:        "demo",
		ServerType: "cpx21",
		Servers: map[string]ServerSpec{
			"worker": {},
			"cache":  {Type: "cax11", Count: 3},
		},
	}
	cfg.applyDefaults()

	assert.Equal(t, ServerSpec{Type: "cpx21", Count: 1}, cfg.Servers["worker"])
	assert.Equal(t, ServerSpec{Type: "cax11", Count: 3}, cfg.Servers["cache"])
}
