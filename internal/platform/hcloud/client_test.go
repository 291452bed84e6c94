package hcloud

import (
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiffhq/skiff/internal/errdefs"
)

func TestMapServer(t *testing.T) {
	t.Parallel()
	server := mapServer(&hcloud.Server{
		Name:   "demo-production",
		Status: hcloud.ServerStatusRunning,
		PublicNet: hcloud.ServerPublicNet{
			IPv4: hcloud.ServerPublicNetIPv4{IP: net.ParseIP("192.0.2.10")},
		},
		ServerType: &hcloud.ServerType{Name: "cpx11"},
	})

	assert.Equal(t, "demo-production", server.Name)
	assert.Equal(t, "running", server.Status)
	assert.Equal(t, "192.0.2.10", server.PublicIPv4)
	assert.Equal(t, "cpx11", server.InstanceType)
}

func TestMapServerToleratesPartialData(t *testing.T) {
	t.Parallel()
	server := mapServer(&hcloud.Server{Name: "demo-production", Status: hcloud.ServerStatusInitializing})

	assert.Equal(t, "demo-production", server.Name)
	assert.Empty(t, server.PublicIPv4)
	assert.Empty(t, server.InstanceType)
}

func TestWrapAPIError(t *testing.T) {
	t.Parallel()
	err := wrapAPIError(hcloud.Error{Code: hcloud.ErrorCodeRateLimitExceeded, Message: "limit of 3600 requests per hour reached"})
	require.Error(t, err)
	assert.True(t, errdefs.IsAPI(err))
	assert.Contains(t, err.Error(), "rate_limit_exceeded")

	wrapped := wrapAPIError(fmt.Errorf("request: %w", hcloud.Error{Code: hcloud.ErrorCodeUnauthorized}))
	var apiErr *errdefs.APIError
	require.ErrorAs(t, wrapped, &apiErr)
	assert.Equal(t, "unauthorized", apiErr.Code)
}

func TestWrapAPIErrorPlainFailure(t *testing.T) {
	t.Parallel()
	err := wrapAPIError(errors.New("connection refused"))
	var apiErr *errdefs.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "hcloud", apiErr.Provider)
	assert.Empty(t, apiErr.Code)
}
