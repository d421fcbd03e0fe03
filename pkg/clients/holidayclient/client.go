// Package holidayclient fetches the read-only holiday calendar from the
// backend.
package holidayclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/api"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/model"
)

// Client wraps the shared REST transport for holiday endpoints.
type Client struct {
	api *api.Client
}

// NewClient creates a holiday client on an existing transport.
func NewClient(transport *api.Client) *Client {
	return &Client{api: transport}
}

type listResponse struct {
	Holidays []model.Holiday `json:"holidays"`
}

// ForYear fetches every holiday of the given year.
func (c *Client) ForYear(ctx context.Context, year int) ([]model.Holiday, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))

	var out listResponse
	if err := c.api.Get(ctx, "/holidays", q, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch holidays for %d: %w", year, err)
	}
	return out.Holidays, nil
}

// Upcoming fetches the next holidays from today, capped at limit.
func (c *Client) Upcoming(ctx context.Context, limit int) ([]model.Holiday, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out listResponse
	if err := c.api.Get(ctx, "/holidays/upcoming", q, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming holidays: %w", err)
	}
	return out.Holidays, nil
}
