package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/clients/leaveclient"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/model"
)

type fakeDecider struct {
	approved   []int
	rejected   []int
	gotReason  string
	decision   *leaveclient.Decision
	decideFail error
}

func (f *fakeDecider) Approve(ctx context.Context, id int) (*leaveclient.Decision, error) {
	if f.decideFail != nil {
		return nil, f.decideFail
	}
	f.approved = append(f.approved, id)
	return f.decision, nil
}

func (f *fakeDecider) Reject(ctx context.Context, id int, reason string) (*leaveclient.Decision, error) {
	if f.decideFail != nil {
		return nil, f.decideFail
	}
	f.rejected = append(f.rejected, id)
	f.gotReason = reason
	return f.decision, nil
}

func pendingRequest() *model.LeaveRequest {
	return &model.LeaveRequest{
		ID:        42,
		RequestID: "LR-2024-042",
		Status:    model.StatusPending,
	}
}

func TestApproveRequestSplicesDecision(t *testing.T) {
	decider := &fakeDecider{
		decision: &leaveclient.Decision{
			ID:         42,
			RequestID:  "LR-2024-042",
			Status:     model.StatusApproved,
			Approver:   model.UserRef{ID: 1, FirstName: "Mia"},
			ApprovedAt: "2024-03-02T09:00:00Z",
		},
	}
	request := pendingRequest()

	decision, err := ApproveRequest(context.Background(), decider, zap.NewNop(), request)
	require.NoError(t, err)

	assert.Equal(t, []int{42}, decider.approved)
	assert.Equal(t, model.StatusApproved, decision.Status)
	// The held snapshot was updated in place
	assert.Equal(t, model.StatusApproved, request.Status)
	require.NotNil(t, request.Approver)
	assert.Equal(t, "Mia", request.Approver.FirstName)
}

func TestApproveRequestRefusesTerminalState(t *testing.T) {
	decider := &fakeDecider{}
	request := pendingRequest()
	request.Status = model.StatusRejected

	_, err := ApproveRequest(context.Background(), decider, zap.NewNop(), request)
	require.Error(t, err)
	assert.Empty(t, decider.approved)
}

func TestRejectRequestRequiresReason(t *testing.T) {
	decider := &fakeDecider{}

	_, err := RejectRequest(context.Background(), decider, zap.NewNop(), pendingRequest(), "   ")
	require.ErrorIs(t, err, ErrEmptyReason)
	assert.Empty(t, decider.rejected)
}

func TestRejectRequestSplicesReason(t *testing.T) {
	decider := &fakeDecider{
		decision: &leaveclient.Decision{
			ID:              42,
			RequestID:       "LR-2024-042",
			Status:          model.StatusRejected,
			Approver:        model.UserRef{ID: 1, FirstName: "Mia"},
			RejectionReason: "coverage conflict",
		},
	}
	request := pendingRequest()

	_, err := RejectRequest(context.Background(), decider, zap.NewNop(), request, "coverage conflict")
	require.NoError(t, err)

	assert.Equal(t, "coverage conflict", decider.gotReason)
	assert.Equal(t, model.StatusRejected, request.Status)
	assert.Equal(t, "coverage conflict", request.RejectionReason)
}
