package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiffhq/skiff/internal/config"
	"github.com/skiffhq/skiff/internal/errdefs"
)

func TestParseTarget(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected Target
		wantErr  bool
	}{
		{name: "empty defaults to production", input: "", expected: TargetProduction},
		{name: "production", input: "production", expected: TargetProduction},
		{name: "staging", input: "staging", expected: TargetStaging},
		{name: "preview", input: "preview", expected: TargetPreview},
		{name: "unknown", input: "prod", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			target, err := ParseTarget(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errdefs.IsConfig(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, target)
		})
	}
}

func TestPrefix(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		app      string
		target   Target
		slug     string
		expected string
		wantErr  bool
	}{
		{name: "production", app: "app", target: TargetProduction, expected: "app-production"},
		{name: "staging", app: "app", target: TargetStaging, expected: "app-staging"},
		{name: "preview with slug", app: "app", target: TargetPreview, slug: "pr-42", expected: "app-preview-pr-42"},
		{name: "preview ignores nothing", app: "shop", target: TargetPreview, slug: "feature-x", expected: "shop-preview-feature-x"},
		{name: "preview without slug", app: "app", target: TargetPreview, wantErr: true},
		{name: "slug ignored outside preview", app: "app", target: TargetProduction, slug: "pr-42", expected: "app-production"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			prefix, err := Prefix(tt.app, tt.target, tt.slug)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errdefs.IsNotFound(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, prefix)

			// Pure: equal inputs always yield equal output.
			again, err := Prefix(tt.app, tt.target, tt.slug)
			require.NoError(t, err)
			assert.Equal(t, prefix, again)
		})
	}
}

func TestNewContext(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{App: "demo"}

	ec, err := NewContext(cfg, TargetProduction, "")
	require.NoError(t, err)
	assert.Equal(t, StatePending, ec.State)
	assert.Equal(t, TargetProduction, ec.Target)
	assert.NotNil(t, ec.Servers)
	assert.Equal(t, "demo-production", ec.Prefix())
}

func TestNewContextPreviewRequiresSlug(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{App: "demo"}

	_, err := NewContext(cfg, TargetPreview, "")
	require.Error(t, err)
	assert.True(t, errdefs.IsNotFound(err))
}
