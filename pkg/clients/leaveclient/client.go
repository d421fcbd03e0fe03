// Package leaveclient is the typed client for the leave-request surface of
// the backend: list, detail, submission, approval workflow and attachments.
package leaveclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/api"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/model"
)

// Client wraps the shared REST transport for leave-request endpoints.
type Client struct {
	api *api.Client
}

// NewClient creates a leave-request client on an existing transport.
func NewClient(transport *api.Client) *Client {
	return &Client{api: transport}
}

// Filters narrows a leave-request list fetch. Zero values are omitted from
// the query string.
type Filters struct {
	Status    model.LeaveStatus
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
	Page      int
	PerPage   int
}

// TeamFilters extends Filters with the team-view narrowing parameters.
type TeamFilters struct {
	Filters
	UserID      int
	LeaveTypeID int
	EmployeeID  int
}

// ListResponse is the paginated list envelope for leave requests.
type ListResponse struct {
	LeaveRequests []model.LeaveRequest `json:"leave_requests"`
	Pagination    model.Pagination     `json:"pagination"`
}

// CreateLeaveRequest is the submission payload. Business rules (balance
// sufficiency, excluded ranges) are validated by the backend; the client
// only shapes the request.
type CreateLeaveRequest struct {
	LeaveTypeID int    `json:"leave_type_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Reason      string `json:"reason"`
	ProxyUserID int    `json:"proxy_user_id"`
}

// MyLeaveRequests lists the caller's own requests.
func (c *Client) MyLeaveRequests(ctx context.Context, filters Filters) (*ListResponse, error) {
	var out ListResponse
	if err := c.api.Get(ctx, "/leave-requests", filters.query(), &out); err != nil {
		return nil, fmt.Errorf("failed to fetch my leave requests: %w", err)
	}
	return &out, nil
}

// RecentLeaveRequests lists the caller's most recent requests, capped at
// limit.
func (c *Client) RecentLeaveRequests(ctx context.Context, limit int) (*ListResponse, error) {
	return c.MyLeaveRequests(ctx, Filters{PerPage: limit})
}

// TeamLeaveRequests lists requests across the caller's team.
func (c *Client) TeamLeaveRequests(ctx context.Context, filters TeamFilters) (*ListResponse, error) {
	var out ListResponse
	if err := c.api.Get(ctx, "/leave-requests/team", filters.query(), &out); err != nil {
		return nil, fmt.Errorf("failed to fetch team leave requests: %w", err)
	}
	return &out, nil
}

// PendingLeaveRequests lists team requests awaiting a decision. The status
// filter is always forced to pending; a caller-supplied status is
// overridden, not merged.
func (c *Client) PendingLeaveRequests(ctx context.Context, filters TeamFilters) (*ListResponse, error) {
	filters.Status = model.StatusPending
	var out ListResponse
	if err := c.api.Get(ctx, "/leave-requests/team", filters.query(), &out); err != nil {
		return nil, fmt.Errorf("failed to fetch pending leave requests: %w", err)
	}
	return &out, nil
}

// GetLeaveRequest fetches the full detail of one request, including the
// requester, approver and proxy person.
func (c *Client) GetLeaveRequest(ctx context.Context, id int) (*model.LeaveRequest, error) {
	var out model.LeaveRequest
	if err := c.api.Get(ctx, fmt.Sprintf("/leave-requests/%d", id), nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch leave request %d: %w", id, err)
	}
	return &out, nil
}

// Create submits a new leave request. The backend responds with the created
// request in pending state.
func (c *Client) Create(ctx context.Context, data CreateLeaveRequest) (*model.LeaveRequest, error) {
	var out model.LeaveRequest
	if err := c.api.Post(ctx, "/leave-requests", data, &out); err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}
	return &out, nil
}

func (f Filters) query() url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.StartDate != "" {
		q.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("end_date", f.EndDate)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(f.PerPage))
	}
	return q
}

func (f TeamFilters) query() url.Values {
	q := f.Filters.query()
	if f.UserID > 0 {
		q.Set("user_id", strconv.Itoa(f.UserID))
	}
	if f.LeaveTypeID > 0 {
		q.Set("leave_type_id", strconv.Itoa(f.LeaveTypeID))
	}
	if f.EmployeeID > 0 {
		q.Set("employee_id", strconv.Itoa(f.EmployeeID))
	}
	return q
}
