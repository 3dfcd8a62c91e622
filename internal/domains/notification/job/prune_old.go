package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"journal-backend/internal/domains/notification/repository"
	"journal-backend/internal/shared"
)

// PruneOldHandler removes notifications past the retention window. The
// scheduler runs it daily.
type PruneOldHandler struct {
	notifications repository.NotificationRepository
}

func NewPruneOldHandler(notifications repository.NotificationRepository) *PruneOldHandler {
	return &PruneOldHandler{notifications: notifications}
}

func (h *PruneOldHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p shared.PruneOldNotificationsPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return asynq.SkipRetry
	}
	if p.OlderThanDays <= 0 {
		return asynq.SkipRetry
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -p.OlderThanDays)

	removed, err := h.notifications.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("prune notifications: %w", err)
	}

	log.Info().
		Int64("removed", removed).
		Time("cutoff", cutoff).
		Msg("old notifications pruned")

	return nil
}
