// Package hcloud adapts the Hetzner Cloud API to the engine's compute
// inventory interface.
package hcloud

import (
	"context"
	"errors"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/skiffhq/skiff/internal/engine"
	"github.com/skiffhq/skiff/internal/errdefs"
)

// Client lists provisioned servers through the Hetzner Cloud API.
type Client struct {
	api *hcloud.Client
}

// New creates a client for the given API token. Token validation is
// delegated to the API.
func New(token string) *Client {
	return &Client{
		api: hcloud.NewClient(
			hcloud.WithToken(token),
			hcloud.WithApplication("skiff", ""),
		),
	}
}

// ListServers returns the full server inventory of the project.
func (c *Client) ListServers(ctx context.Context) ([]engine.Server, error) {
	servers, err := c.api.Server.All(ctx)
	if err != nil {
		return nil, wrapAPIError(err)
	}

	out := make([]engine.Server, 0, len(servers))
	for _, s := range servers {
		out = append(out, mapServer(s))
	}
	return out, nil
}

func mapServer(s *hcloud.Server) engine.Server {
	server := engine.Server{
		Name:   s.Name,
		Status: string(s.Status),
	}
	if s.PublicNet.IPv4.IP != nil {
		server.PublicIPv4 = s.PublicNet.IPv4.IP.String()
	}
	if s.ServerType != nil {
		server.InstanceType = s.ServerType.Name
	}
	return server
}

// wrapAPIError converts an hcloud API failure into the runtime's APIError
// kind, preserving the provider error code.
func wrapAPIError(err error) error {
	var herr hcloud.Error
	if errors.As(err, &herr) {
		return &errdefs.APIError{
			Provider: "hcloud",
			Code:     string(herr.Code),
			Err:      err,
		}
	}
	return &errdefs.APIError{Provider: "hcloud", Err: err}
}
