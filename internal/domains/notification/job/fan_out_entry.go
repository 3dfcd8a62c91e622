package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"journal-backend/internal/domains/notification/model"
	"journal-backend/internal/domains/notification/repository"
	socialRepository "journal-backend/internal/domains/social/repository"
	"journal-backend/internal/shared"
)

// FanOutEntryHandler delivers one notification per follower when a public
// entry is created.
type FanOutEntryHandler struct {
	notifications repository.NotificationRepository
	social        socialRepository.SocialRepository
}

func NewFanOutEntryHandler(notifications repository.NotificationRepository, social socialRepository.SocialRepository) *FanOutEntryHandler {
	return &FanOutEntryHandler{notifications: notifications, social: social}
}

func (h *FanOutEntryHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p shared.EntryFanOutPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// Malformed payload will never parse; retrying is pointless.
		return asynq.SkipRetry
	}

	entryID, err := uuid.Parse(p.EntryID)
	if err != nil {
		return asynq.SkipRetry
	}
	authorID, err := uuid.Parse(p.AuthorID)
	if err != nil {
		return asynq.SkipRetry
	}

	followerIDs, err := h.social.FollowerIDs(ctx, authorID)
	if err != nil {
		return fmt.Errorf("fan-out: load followers: %w", err)
	}
	if len(followerIDs) == 0 {
		return nil
	}

	now := time.Now().UTC()
	notifications := make([]*model.Notification, 0, len(followerIDs))
	for _, followerID := range followerIDs {
		notifications = append(notifications, &model.Notification{
			ID:          uuid.New(),
			RecipientID: followerID,
			ActorID:     authorID,
			Type:        model.TypeNewEntry,
			EntryID:     &entryID,
			Message:     p.Title,
			CreatedAt:   now,
		})
	}

	if err := h.notifications.CreateBatch(ctx, notifications); err != nil {
		return fmt.Errorf("fan-out: write notifications: %w", err)
	}

	log.Info().
		Str("entry_id", p.EntryID).
		Int("followers", len(followerIDs)).
		Msg("entry fan-out delivered")

	return nil
}
