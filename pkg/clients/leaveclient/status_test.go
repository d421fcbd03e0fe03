package leaveclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/model"
)

func teamRequest(userID int, status model.LeaveStatus, start, end string) model.LeaveRequest {
	return model.LeaveRequest{
		User:      &model.UserRef{ID: userID},
		LeaveType: model.LeaveType{ID: 1, Name: "Annual Leave"},
		StartDate: start,
		EndDate:   end,
		Status:    status,
	}
}

func TestIsOnLeaveEmptyList(t *testing.T) {
	status := IsOnLeave(1, nil, time.Now())
	assert.False(t, status.OnLeave)
	assert.Empty(t, status.LeaveType)
	assert.Empty(t, status.EndDate)
}

func TestIsOnLeaveApprovedSpanCoveringToday(t *testing.T) {
	now := time.Date(2024, 1, 11, 14, 30, 0, 0, time.UTC)
	requests := []model.LeaveRequest{
		teamRequest(7, model.StatusApproved, "2024-01-10", "2024-01-12"),
	}

	status := IsOnLeave(7, requests, now)
	assert.True(t, status.OnLeave)
	assert.Equal(t, "Annual Leave", status.LeaveType)
	assert.Equal(t, "2024-01-12", status.EndDate)
}

func TestIsOnLeaveSpanBoundsInclusive(t *testing.T) {
	requests := []model.LeaveRequest{
		teamRequest(7, model.StatusApproved, "2024-01-10", "2024-01-12"),
	}

	// First minute of the start day and last minute of the end day both count
	startOfSpan := time.Date(2024, 1, 10, 0, 0, 1, 0, time.UTC)
	endOfSpan := time.Date(2024, 1, 12, 23, 59, 59, 0, time.UTC)
	assert.True(t, IsOnLeave(7, requests, startOfSpan).OnLeave)
	assert.True(t, IsOnLeave(7, requests, endOfSpan).OnLeave)

	// Just outside on either side does not
	before := time.Date(2024, 1, 9, 23, 59, 59, 0, time.UTC)
	after := time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsOnLeave(7, requests, before).OnLeave)
	assert.False(t, IsOnLeave(7, requests, after).OnLeave)
}

func TestIsOnLeavePendingDoesNotCount(t *testing.T) {
	now := time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)
	requests := []model.LeaveRequest{
		teamRequest(7, model.StatusPending, "2024-01-10", "2024-01-12"),
	}

	assert.False(t, IsOnLeave(7, requests, now).OnLeave)
}

func TestIsOnLeaveOtherUserDoesNotCount(t *testing.T) {
	now := time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)
	requests := []model.LeaveRequest{
		teamRequest(8, model.StatusApproved, "2024-01-10", "2024-01-12"),
	}

	assert.False(t, IsOnLeave(7, requests, now).OnLeave)
}

func TestIsOnLeaveOverlappingSpansLatestEndWins(t *testing.T) {
	now := time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)

	short := teamRequest(7, model.StatusApproved, "2024-01-10", "2024-01-12")
	long := teamRequest(7, model.StatusApproved, "2024-01-11", "2024-01-15")
	long.LeaveType.Name = "Sick Leave"

	// Deterministic regardless of list order
	status := IsOnLeave(7, []model.LeaveRequest{short, long}, now)
	assert.Equal(t, "2024-01-15", status.EndDate)
	assert.Equal(t, "Sick Leave", status.LeaveType)

	status = IsOnLeave(7, []model.LeaveRequest{long, short}, now)
	assert.Equal(t, "2024-01-15", status.EndDate)
}

func TestIsOnLeaveSkipsOwnShapeRequests(t *testing.T) {
	now := time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)
	own := model.LeaveRequest{
		LeaveType: model.LeaveType{Name: "Annual Leave"},
		StartDate: "2024-01-10",
		EndDate:   "2024-01-12",
		Status:    model.StatusApproved,
	}

	assert.False(t, IsOnLeave(7, []model.LeaveRequest{own}, now).OnLeave)
}

func TestIsTeamLeaveRequest(t *testing.T) {
	team := teamRequest(7, model.StatusPending, "2024-01-10", "2024-01-12")
	own := model.LeaveRequest{StartDate: "2024-01-10", EndDate: "2024-01-12"}

	assert.True(t, IsTeamLeaveRequest(team))
	assert.False(t, IsTeamLeaveRequest(own))
	assert.Equal(t, model.KindTeam, team.Kind())
	assert.Equal(t, model.KindOwn, own.Kind())
}
