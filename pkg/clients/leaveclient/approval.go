package leaveclient

import (
	"context"
	"fmt"

	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/model"
)

// Decision is the backend's answer to an approve or reject call. It carries
// only the transition fields, not the full request; callers splice these
// into their held copy or re-fetch.
type Decision struct {
	ID              int               `json:"id"`
	RequestID       string            `json:"request_id"`
	Status          model.LeaveStatus `json:"status"`
	Approver        model.UserRef     `json:"approver"`
	ApprovedAt      string            `json:"approved_at"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
}

type rejectBody struct {
	RejectionReason string `json:"rejection_reason"`
}

// Approve transitions a pending request to approved.
func (c *Client) Approve(ctx context.Context, id int) (*Decision, error) {
	var out Decision
	if err := c.api.Patch(ctx, fmt.Sprintf("/leave-requests/%d/approve", id), nil, &out); err != nil {
		return nil, fmt.Errorf("failed to approve leave request %d: %w", id, err)
	}
	return &out, nil
}

// Reject transitions a pending request to rejected. The backend contract
// takes the reason as-is; requiring it to be non-empty is the workflow
// layer's job.
func (c *Client) Reject(ctx context.Context, id int, reason string) (*Decision, error) {
	var out Decision
	if err := c.api.Patch(ctx, fmt.Sprintf("/leave-requests/%d/reject", id), rejectBody{RejectionReason: reason}, &out); err != nil {
		return nil, fmt.Errorf("failed to reject leave request %d: %w", id, err)
	}
	return &out, nil
}

// Splice copies a decision's transition fields onto a held request
// snapshot. The snapshot stays stale in every other respect.
func Splice(request *model.LeaveRequest, decision *Decision) {
	request.Status = decision.Status
	request.Approver = &decision.Approver
	request.ApprovedAt = decision.ApprovedAt
	if decision.RejectionReason != "" {
		request.RejectionReason = decision.RejectionReason
	}
}
