package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"journal-backend/internal/shared"
)

// Client enqueues background tasks. Fan-out is fire-and-forget from the
// API's point of view; a failed enqueue must not fail the entry write.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr string) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr}),
	}
}

// EnqueueEntryFanOut queues follower notification delivery for a new
// public entry.
func (c *Client) EnqueueEntryFanOut(payload shared.EntryFanOutPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal fan-out payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeEntryFanOut, data)

	info, err := c.client.Enqueue(
		task,
		asynq.Queue(shared.QueueNotification),
		asynq.MaxRetry(3),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("enqueue fan-out: %w", err)
	}

	log.Debug().
		Str("task_id", info.ID).
		Str("entry_id", payload.EntryID).
		Msg("entry fan-out enqueued")

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
