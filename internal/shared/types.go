package shared

// Asynq queue names. Fan-out goes to the default queue; maintenance jobs
// run in the low-priority queue so they never starve deliveries.
const (
	QueueNotification = "default"
	QueueMaintenance  = "low"
)

// Asynq task types.
const (
	TypeEntryFanOut           = "notification:fan_out_entry"
	TypePruneOldNotifications = "notification:prune_old"
)

// EntryFanOutPayload is enqueued when a public entry is created and
// consumed by the worker, which writes one notification per follower.
type EntryFanOutPayload struct {
	EntryID  string `json:"entryId"`
	AuthorID string `json:"authorId"`
	Title    string `json:"title"`
}

// PruneOldNotificationsPayload bounds the pruning job.
type PruneOldNotificationsPayload struct {
	OlderThanDays int `json:"olderThanDays"`
}
