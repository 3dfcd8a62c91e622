package service

import (
	"context"

	"github.com/google/uuid"

	"journal-backend/internal/domains/notification/model"
	"journal-backend/internal/shared/query"
)

type NotificationService interface {
	// List pages the caller's own notifications.
	List(ctx context.Context, recipientID uuid.UUID, req model.ListNotificationsRequest) (query.Page[model.NotificationResponse], error)

	// Create records a notification from the caller to any recipient.
	Create(ctx context.Context, actorID uuid.UUID, req model.CreateNotificationRequest) (*model.Notification, error)

	// RecordFollowAlert writes the alert raised when actorID starts
	// following recipientID.
	RecordFollowAlert(ctx context.Context, recipientID, actorID uuid.UUID) error

	// MarkRead flags one of the caller's notifications as read.
	MarkRead(ctx context.Context, callerID, id uuid.UUID) error

	// Delete removes one of the caller's notifications.
	Delete(ctx context.Context, callerID, id uuid.UUID) error
}
