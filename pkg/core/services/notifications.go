package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/clients/notificationclient"
	"github.com/cloud-native-group-1/leave-n-attendance-frontend/pkg/core/model"
)

// NotificationStore is the notification-client surface used by the
// workflows.
type NotificationStore interface {
	List(ctx context.Context, filters notificationclient.Filters) (*notificationclient.ListResponse, error)
	MarkRead(ctx context.Context, id int) error
	MarkAllRead(ctx context.Context) error
}

// Inbox is a fetched notification page with its unread count.
type Inbox struct {
	Notifications []model.Notification
	Pagination    model.Pagination
	UnreadCount   int
}

// FetchInbox lists notifications and derives the unread count from the
// fetched page.
func FetchInbox(ctx context.Context, store NotificationStore, logger *zap.Logger, filters notificationclient.Filters) (*Inbox, error) {
	resp, err := store.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	unread := 0
	for _, n := range resp.Notifications {
		if !n.IsRead {
			unread++
		}
	}

	logger.Debug("Notifications fetched",
		zap.Int("count", len(resp.Notifications)),
		zap.Int("unread", unread))

	return &Inbox{
		Notifications: resp.Notifications,
		Pagination:    resp.Pagination,
		UnreadCount:   unread,
	}, nil
}

// OpenNotification marks a notification as read and returns the leave
// request it points at, if any. A zero return means the notification is
// not linked to a request.
func OpenNotification(ctx context.Context, store NotificationStore, logger *zap.Logger, n model.Notification) (int, error) {
	if !n.IsRead {
		if err := store.MarkRead(ctx, n.ID); err != nil {
			return 0, err
		}
		logger.Debug("Notification marked as read", zap.Int("id", n.ID))
	}

	if n.RelatedTo == "leave_request" {
		return n.RelatedID, nil
	}
	return 0, nil
}

// MarkAllNotificationsRead clears the unread state of every notification.
func MarkAllNotificationsRead(ctx context.Context, store NotificationStore, logger *zap.Logger) error {
	if err := store.MarkAllRead(ctx); err != nil {
		return err
	}
	logger.Info("All notifications marked as read")
	return nil
}
