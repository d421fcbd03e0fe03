// Package userclient fetches profile and organizational lookups: the
// current user, their manager chain, subordinates and colleagues.
package userclient

import (
	"context"
	"fmt"

	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/api"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/model"
)

// Client wraps the shared REST transport for user and team endpoints.
type Client struct {
	api *api.Client
}

// NewClient creates a user client on an existing transport.
func NewClient(transport *api.Client) *Client {
	return &Client{api: transport}
}

type membersResponse struct {
	Members []model.TeamMember `json:"members"`
}

// Me fetches the authenticated user's profile, including quotas and the
// manager reference.
func (c *Client) Me(ctx context.Context) (*model.UserProfile, error) {
	var out model.UserProfile
	if err := c.api.Get(ctx, "/users/me", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch current user: %w", err)
	}
	return &out, nil
}

// TeamMembers fetches the colleagues sharing the caller's manager.
func (c *Client) TeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	var out membersResponse
	if err := c.api.Get(ctx, "/users/team", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch team members: %w", err)
	}
	return out.Members, nil
}

// Subordinates fetches the caller's direct reports. Empty for
// non-managers.
func (c *Client) Subordinates(ctx context.Context) ([]model.TeamMember, error) {
	var out membersResponse
	if err := c.api.Get(ctx, "/users/subordinates", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch subordinates: %w", err)
	}
	return out.Members, nil
}
