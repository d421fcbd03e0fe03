package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/clients/leaveclient"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/model"
)

type fakeRoster struct {
	me      *model.UserProfile
	members []model.TeamMember
	err     error
}

func (f *fakeRoster) Me(ctx context.Context) (*model.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.me, nil
}

func (f *fakeRoster) TeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.members, nil
}

type fakeTeamLeaves struct {
	gotFilters leaveclient.TeamFilters
	requests   []model.LeaveRequest
	err        error
}

func (f *fakeTeamLeaves) TeamLeaveRequests(ctx context.Context, filters leaveclient.TeamFilters) (*leaveclient.ListResponse, error) {
	f.gotFilters = filters
	if f.err != nil {
		return nil, f.err
	}
	return &leaveclient.ListResponse{LeaveRequests: f.requests}, nil
}

func TestTeamStatusJoinsRosterAndLeaves(t *testing.T) {
	now := time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)
	roster := &fakeRoster{
		me: &model.UserProfile{ID: 1, FirstName: "Mia"},
		members: []model.TeamMember{
			{ID: 7, FirstName: "Noor", LastName: "Rahman"},
			{ID: 8, FirstName: "Leo", LastName: "Park"},
		},
	}
	leaves := &fakeTeamLeaves{
		requests: []model.LeaveRequest{
			teamApproved(7, "2024-01-10", "2024-01-12", "Annual Leave"),
		},
	}

	result, err := TeamStatus(context.Background(), roster, leaves, zap.NewNop(), now)
	require.NoError(t, err)

	assert.Equal(t, "Mia", result.Viewer.FirstName)
	require.Len(t, result.Members, 2)
	assert.True(t, result.Members[0].Status.OnLeave)
	assert.Equal(t, "2024-01-12", result.Members[0].Status.EndDate)
	assert.False(t, result.Members[1].Status.OnLeave)
	assert.Equal(t, 1, result.OnLeaveCount())

	// Only approved requests are relevant for the availability board
	assert.Equal(t, model.StatusApproved, leaves.gotFilters.Status)
}

func TestTeamStatusFetchFailurePropagates(t *testing.T) {
	roster := &fakeRoster{err: errors.New("session expired")}
	leaves := &fakeTeamLeaves{}

	_, err := TeamStatus(context.Background(), roster, leaves, zap.NewNop(), time.Now())
	require.Error(t, err)
	assert.ErrorContains(t, err, "session expired")
}

func teamApproved(userID int, start, end, leaveType string) model.LeaveRequest {
	return model.LeaveRequest{
		User:      &model.UserRef{ID: userID},
		LeaveType: model.LeaveType{Name: leaveType},
		StartDate: start,
		EndDate:   end,
		Status:    model.StatusApproved,
	}
}
