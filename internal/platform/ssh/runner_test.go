package ssh

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiffhq/skiff/internal/errdefs"
)

func TestExecHonorsCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner("192.0.2.10", "root", generatePrivateKey(t))
	_, err := r.Exec(ctx, "uptime")
	require.ErrorIs(t, err, context.Canceled)
}

func TestAddr(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		host     string
		expected string
	}{
		{name: "ipv4", host: "192.0.2.10", expected: "192.0.2.10:22"},
		{name: "ipv6 bracketed", host: "2001:db8::1", expected: "[2001:db8::1]:22"},
		{name: "hostname", host: "demo.example.com", expected: "demo.example.com:22"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := NewRunner(tt.host, "root", nil)
			assert.Equal(t, tt.expected, r.addr())
		})
	}
}

func TestExecRejectsBadPrivateKey(t *testing.T) {
	t.Parallel()
	r := NewRunner("192.0.2.10", "root", []byte("garbage"))
	_, err := r.Exec(context.Background(), "uptime")
	require.Error(t, err)
	assert.True(t, errdefs.IsConfig(err))
}
