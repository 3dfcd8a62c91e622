package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal-backend/internal/domains/notification/model"
	"journal-backend/internal/shared/query"
)

type stubNotificationRepo struct {
	notifications map[uuid.UUID]*model.Notification
	lastType      string
	lastUnread    bool
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{notifications: make(map[uuid.UUID]*model.Notification)}
}

func (s *stubNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	s.notifications[n.ID] = n
	return nil
}

func (s *stubNotificationRepo) CreateBatch(_ context.Context, ns []*model.Notification) error {
	for _, n := range ns {
		s.notifications[n.ID] = n
	}
	return nil
}

func (s *stubNotificationRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Notification, error) {
	if n, ok := s.notifications[id]; ok {
		return n, nil
	}
	return nil, model.ErrNotificationNotFound
}

func (s *stubNotificationRepo) List(_ context.Context, recipientID uuid.UUID, typeFilter string, unreadOnly bool, _ query.Pagination) ([]model.NotificationResponse, int64, error) {
	s.lastType = typeFilter
	s.lastUnread = unreadOnly

	var out []model.NotificationResponse
	for _, n := range s.notifications {
		if n.RecipientID != recipientID {
			continue
		}
		if typeFilter != "" && n.Type != typeFilter {
			continue
		}
		out = append(out, model.NotificationResponse{ID: n.ID, Type: n.Type, RecipientID: n.RecipientID})
	}
	return out, int64(len(out)), nil
}

func (s *stubNotificationRepo) MarkRead(_ context.Context, id uuid.UUID) error {
	n, ok := s.notifications[id]
	if !ok {
		return model.ErrNotificationNotFound
	}
	n.Read = true
	return nil
}

func (s *stubNotificationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.notifications[id]; !ok {
		return model.ErrNotificationNotFound
	}
	delete(s.notifications, id)
	return nil
}

func (s *stubNotificationRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	var removed int64
	for id, n := range s.notifications {
		if n.CreatedAt.Before(cutoff) {
			delete(s.notifications, id)
			removed++
		}
	}
	return removed, nil
}

func TestCreateNotification(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()
	recipient := uuid.New()

	t.Run("records actor and recipient", func(t *testing.T) {
		repo := newStubNotificationRepo()
		svc := NewNotificationService(repo)

		n, err := svc.Create(ctx, actor, model.CreateNotificationRequest{
			RecipientID: recipient,
			Type:        model.TypeOther,
		})
		require.NoError(t, err)
		assert.Equal(t, actor, n.ActorID)
		assert.Equal(t, recipient, n.RecipientID)
		assert.False(t, n.Read)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		svc := NewNotificationService(newStubNotificationRepo())

		_, err := svc.Create(ctx, actor, model.CreateNotificationRequest{
			RecipientID: recipient,
			Type:        "carrier-pigeon",
		})
		assert.Error(t, err)
	})
}

func TestListNotifications(t *testing.T) {
	ctx := context.Background()
	recipient := uuid.New()

	t.Run("passes the type filter through", func(t *testing.T) {
		repo := newStubNotificationRepo()
		svc := NewNotificationService(repo)

		_, err := svc.List(ctx, recipient, model.ListNotificationsRequest{Type: model.TypeNewEntry, Unread: true})
		require.NoError(t, err)
		assert.Equal(t, model.TypeNewEntry, repo.lastType)
		assert.True(t, repo.lastUnread)
	})

	t.Run("rejects an unknown type filter", func(t *testing.T) {
		svc := NewNotificationService(newStubNotificationRepo())

		_, err := svc.List(ctx, recipient, model.ListNotificationsRequest{Type: "smoke-signal"})
		assert.ErrorIs(t, err, model.ErrInvalidType)
	})
}

func TestRecipientOnlyMutations(t *testing.T) {
	ctx := context.Background()
	recipient := uuid.New()
	stranger := uuid.New()

	repo := newStubNotificationRepo()
	svc := NewNotificationService(repo)

	n := &model.Notification{ID: uuid.New(), RecipientID: recipient, ActorID: uuid.New(), Type: model.TypeFollowAlert}
	repo.notifications[n.ID] = n

	t.Run("stranger cannot mark read", func(t *testing.T) {
		assert.ErrorIs(t, svc.MarkRead(ctx, stranger, n.ID), model.ErrNotRecipient)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, stranger, n.ID), model.ErrNotRecipient)
	})

	t.Run("recipient marks read and deletes", func(t *testing.T) {
		require.NoError(t, svc.MarkRead(ctx, recipient, n.ID))
		assert.True(t, n.Read)

		require.NoError(t, svc.Delete(ctx, recipient, n.ID))
		assert.Empty(t, repo.notifications)
	})
}
