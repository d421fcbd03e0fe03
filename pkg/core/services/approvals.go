package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/clients/leaveclient"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/model"
)

// ErrEmptyReason is returned when a rejection is attempted without a
// reason.
var ErrEmptyReason = errors.New("a rejection reason is required")

// DecisionClient is the leave-client surface for approve/reject calls.
type DecisionClient interface {
	Approve(ctx context.Context, id int) (*leaveclient.Decision, error)
	Reject(ctx context.Context, id int, reason string) (*leaveclient.Decision, error)
}

// ApproveRequest approves a pending request and splices the returned
// transition fields into the held snapshot. Requests already in a terminal
// state are refused locally; the backend is still the real enforcer.
func ApproveRequest(ctx context.Context, client DecisionClient, logger *zap.Logger, request *model.LeaveRequest) (*leaveclient.Decision, error) {
	if request.Status.Terminal() {
		return nil, fmt.Errorf("leave request %s is already %s", request.RequestID, request.Status)
	}

	logger.Info("Approving leave request",
		zap.Int("id", request.ID),
		zap.String("request_id", request.RequestID))

	decision, err := client.Approve(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	leaveclient.Splice(request, decision)
	logger.Info("Leave request approved",
		zap.String("request_id", decision.RequestID),
		zap.String("approver", decision.Approver.FullName()),
		zap.String("approved_at", decision.ApprovedAt))
	return decision, nil
}

// RejectRequest rejects a pending request. The reason must be non-empty;
// the backend contract does not check it, so the workflow layer does.
func RejectRequest(ctx context.Context, client DecisionClient, logger *zap.Logger, request *model.LeaveRequest, reason string) (*leaveclient.Decision, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrEmptyReason
	}
	if request.Status.Terminal() {
		return nil, fmt.Errorf("leave request %s is already %s", request.RequestID, request.Status)
	}

	logger.Info("Rejecting leave request",
		zap.Int("id", request.ID),
		zap.String("request_id", request.RequestID))

	decision, err := client.Reject(ctx, request.ID, reason)
	if err != nil {
		return nil, err
	}

	leaveclient.Splice(request, decision)
	logger.Info("Leave request rejected",
		zap.String("request_id", decision.RequestID),
		zap.String("approver", decision.Approver.FullName()))
	return decision, nil
}
