package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"journal-backend/internal/domains/notification/model"
	"journal-backend/internal/domains/notification/repository"
	"journal-backend/internal/shared/query"
)

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List(ctx context.Context, recipientID uuid.UUID, req model.ListNotificationsRequest) (query.Page[model.NotificationResponse], error) {
	if req.Type != "" && !model.ValidTypes[req.Type] {
		return query.Page[model.NotificationResponse]{}, model.NewInvalidTypeError(req.Type)
	}

	p := query.NewPagination(req.Page, req.PageSize)

	notifications, total, err := s.repo.List(ctx, recipientID, req.Type, req.Unread, p)
	if err != nil {
		return query.Page[model.NotificationResponse]{}, err
	}

	return query.NewPage(notifications, p, total), nil
}

func (s *notificationService) Create(ctx context.Context, actorID uuid.UUID, req model.CreateNotificationRequest) (*model.Notification, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	n := &model.Notification{
		ID:          uuid.New(),
		RecipientID: req.RecipientID,
		ActorID:     actorID,
		Type:        req.Type,
		EntryID:     req.EntryID,
		Message:     req.Message,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	log.Debug().
		Str("notification_id", n.ID.String()).
		Str("recipient_id", n.RecipientID.String()).
		Str("type", n.Type).
		Msg("notification created")

	return n, nil
}

func (s *notificationService) RecordFollowAlert(ctx context.Context, recipientID, actorID uuid.UUID) error {
	n := &model.Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		ActorID:     actorID,
		Type:        model.TypeFollowAlert,
		Message:     "started following you",
		CreatedAt:   time.Now().UTC(),
	}
	return s.repo.Create(ctx, n)
}

func (s *notificationService) MarkRead(ctx context.Context, callerID, id uuid.UUID) error {
	if err := s.authorize(ctx, callerID, id); err != nil {
		return err
	}
	return s.repo.MarkRead(ctx, id)
}

func (s *notificationService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	if err := s.authorize(ctx, callerID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// authorize restricts mutation to the recipient.
func (s *notificationService) authorize(ctx context.Context, callerID, id uuid.UUID) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.RecipientID != callerID {
		return model.ErrNotRecipient
	}
	return nil
}
