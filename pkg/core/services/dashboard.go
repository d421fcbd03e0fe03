package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/clients/leaveclient"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/clients/notificationclient"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/model"
)

// RecentLeaveLister fetches the caller's most recent requests.
type RecentLeaveLister interface {
	RecentLeaveRequests(ctx context.Context, limit int) (*leaveclient.ListResponse, error)
}

// UpcomingHolidayLister fetches the next holidays from today.
type UpcomingHolidayLister interface {
	Upcoming(ctx context.Context, limit int) ([]model.Holiday, error)
}

// Dashboard is the landing-page summary.
type Dashboard struct {
	RecentRequests   []model.LeaveRequest
	UpcomingHolidays []model.Holiday
	UnreadCount      int
}

// DashboardSummary fetches the landing page's three panels concurrently:
// recent own requests, upcoming holidays and the unread notification
// count.
func DashboardSummary(
	ctx context.Context,
	leaves RecentLeaveLister,
	holidays UpcomingHolidayLister,
	notifications NotificationStore,
	logger *zap.Logger,
) (*Dashboard, error) {
	logger.Info("Building dashboard summary")

	var summary Dashboard

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := leaves.RecentLeaveRequests(gctx, 3)
		if err != nil {
			return fmt.Errorf("failed to fetch recent leave requests: %w", err)
		}
		summary.RecentRequests = resp.LeaveRequests
		return nil
	})
	g.Go(func() error {
		upcoming, err := holidays.Upcoming(gctx, 5)
		if err != nil {
			return fmt.Errorf("failed to fetch upcoming holidays: %w", err)
		}
		summary.UpcomingHolidays = upcoming
		return nil
	})
	g.Go(func() error {
		resp, err := notifications.List(gctx, notificationclient.Filters{UnreadOnly: true})
		if err != nil {
			return fmt.Errorf("failed to fetch unread notifications: %w", err)
		}
		summary.UnreadCount = len(resp.Notifications)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("Dashboard summary built",
		zap.Int("recent_requests", len(summary.RecentRequests)),
		zap.Int("upcoming_holidays", len(summary.UpcomingHolidays)),
		zap.Int("unread_notifications", summary.UnreadCount))
	return &summary, nil
}
