// Package notificationclient lists and marks the caller's notifications.
package notificationclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/api"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/model"
)

// Client wraps the shared REST transport for notification endpoints.
type Client struct {
	api *api.Client
}

// NewClient creates a notification client on an existing transport.
func NewClient(transport *api.Client) *Client {
	return &Client{api: transport}
}

// Filters narrows a notification list fetch.
type Filters struct {
	UnreadOnly bool
	Page       int
	PerPage    int
}

// ListResponse is the paginated notification envelope.
type ListResponse struct {
	Notifications []model.Notification `json:"notifications"`
	Pagination    model.Pagination     `json:"pagination"`
}

// List fetches the caller's notifications, newest first.
func (c *Client) List(ctx context.Context, filters Filters) (*ListResponse, error) {
	q := url.Values{}
	if filters.UnreadOnly {
		q.Set("unread_only", "true")
	}
	if filters.Page > 0 {
		q.Set("page", strconv.Itoa(filters.Page))
	}
	if filters.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(filters.PerPage))
	}

	var out ListResponse
	if err := c.api.Get(ctx, "/notifications", q, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	return &out, nil
}

// MarkRead marks one notification as read.
func (c *Client) MarkRead(ctx context.Context, id int) error {
	if err := c.api.Patch(ctx, fmt.Sprintf("/notifications/%d/read", id), nil, nil); err != nil {
		return fmt.Errorf("failed to mark notification %d as read: %w", id, err)
	}
	return nil
}

// MarkAllRead marks every unread notification as read.
func (c *Client) MarkAllRead(ctx context.Context) error {
	if err := c.api.Patch(ctx, "/notifications/read-all", nil, nil); err != nil {
		return fmt.Errorf("failed to mark all notifications as read: %w", err)
	}
	return nil
}
