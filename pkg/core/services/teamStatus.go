package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/clients/leaveclient"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/model"
)

// RosterClient is the user-client surface needed for the team board.
type RosterClient interface {
	Me(ctx context.Context) (*model.UserProfile, error)
	TeamMembers(ctx context.Context) ([]model.TeamMember, error)
}

// TeamLeaveLister fetches team leave requests.
type TeamLeaveLister interface {
	TeamLeaveRequests(ctx context.Context, filters leaveclient.TeamFilters) (*leaveclient.ListResponse, error)
}

// MemberStatus is one roster entry joined with its current leave state.
type MemberStatus struct {
	Member model.TeamMember
	Status leaveclient.OnLeaveStatus
}

// TeamStatusResult is everything the team board renders.
type TeamStatusResult struct {
	Viewer  *model.UserProfile
	Members []MemberStatus
}

// OnLeaveCount returns how many team members are currently away.
func (r *TeamStatusResult) OnLeaveCount() int {
	count := 0
	for _, m := range r.Members {
		if m.Status.OnLeave {
			count++
		}
	}
	return count
}

// TeamStatus builds the team availability board: the roster, the team's
// approved leave requests and the viewer's profile are fetched
// concurrently and joined before anything is rendered.
func TeamStatus(
	ctx context.Context,
	users RosterClient,
	leaves TeamLeaveLister,
	logger *zap.Logger,
	now time.Time,
) (*TeamStatusResult, error) {
	logger.Info("Building team status board")

	var (
		viewer   *model.UserProfile
		members  []model.TeamMember
		requests *leaveclient.ListResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		viewer, err = users.Me(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch viewer profile: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		members, err = users.TeamMembers(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch team roster: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		requests, err = leaves.TeamLeaveRequests(gctx, leaveclient.TeamFilters{
			Filters: leaveclient.Filters{Status: model.StatusApproved},
		})
		if err != nil {
			return fmt.Errorf("failed to fetch team leave requests: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("Team data fetched",
		zap.Int("members", len(members)),
		zap.Int("approved_requests", len(requests.LeaveRequests)))

	statuses := make([]MemberStatus, len(members))
	for i, member := range members {
		statuses[i] = MemberStatus{
			Member: member,
			Status: leaveclient.IsOnLeave(member.ID, requests.LeaveRequests, now),
		}
	}

	result := &TeamStatusResult{Viewer: viewer, Members: statuses}
	logger.Info("Team status board built",
		zap.Int("members", len(statuses)),
		zap.Int("on_leave", result.OnLeaveCount()))
	return result, nil
}
