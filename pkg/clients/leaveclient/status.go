package leaveclient

import (
	"time"

	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/model"
)

const dateLayout = "2006-01-02"

// OnLeaveStatus is the derived "is this person away right now" answer.
// LeaveType and EndDate are set only when OnLeave is true.
type OnLeaveStatus struct {
	OnLeave   bool
	LeaveType string
	EndDate   string
}

// IsOnLeave scans team leave requests for an approved span covering "now"
// for the given user. A span covers now when now falls within
// [start 00:00:00, end 23:59:59.999] in now's location. When several
// approved spans overlap, the one ending latest wins, so the reported
// return date is the true one regardless of list order.
func IsOnLeave(userID int, requests []model.LeaveRequest, now time.Time) OnLeaveStatus {
	var current *model.LeaveRequest
	var currentEnd time.Time

	for i := range requests {
		r := &requests[i]
		if r.User == nil || r.User.ID != userID || r.Status != model.StatusApproved {
			continue
		}

		start, err := time.ParseInLocation(dateLayout, r.StartDate, now.Location())
		if err != nil {
			continue
		}
		end, err := time.ParseInLocation(dateLayout, r.EndDate, now.Location())
		if err != nil {
			continue
		}
		endOfDay := end.AddDate(0, 0, 1)

		if now.Before(start) || !now.Before(endOfDay) {
			continue
		}
		if current == nil || end.After(currentEnd) {
			current = r
			currentEnd = end
		}
	}

	if current == nil {
		return OnLeaveStatus{}
	}
	return OnLeaveStatus{
		OnLeave:   true,
		LeaveType: current.LeaveType.Name,
		EndDate:   current.EndDate,
	}
}

// IsTeamLeaveRequest reports whether a request is a team member's rather
// than the caller's own. The split is decided at the API boundary from the
// presence of the requesting user in the payload.
func IsTeamLeaveRequest(r model.LeaveRequest) bool {
	return r.Kind() == model.KindTeam
}
