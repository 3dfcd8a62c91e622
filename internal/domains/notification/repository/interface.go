package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"journal-backend/internal/domains/notification/model"
	"journal-backend/internal/shared/query"
)

type NotificationRepository interface {
	// Create inserts a single notification.
	Create(ctx context.Context, n *model.Notification) error

	// CreateBatch inserts many notifications in one transaction. The
	// fan-out job uses it so a crash never delivers to half the followers.
	CreateBatch(ctx context.Context, ns []*model.Notification) error

	// GetByID gets a notification.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Notification, error)

	// List pages the recipient's notifications, newest first, optionally
	// restricted to one type or to unread ones.
	List(ctx context.Context, recipientID uuid.UUID, typeFilter string, unreadOnly bool, p query.Pagination) ([]model.NotificationResponse, int64, error)

	// MarkRead flags a notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// Delete removes a notification.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteOlderThan removes notifications created before the cutoff and
	// returns how many went away.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
