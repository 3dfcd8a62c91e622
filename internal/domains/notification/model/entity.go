package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification types. Other is the catch-all for client-created
// notifications that fit neither system event.
const (
	TypeNewEntry    = "newEntry"
	TypeFollowAlert = "followAlert"
	TypeOther       = "other"
)

// ValidTypes guards the type filter and create requests.
var ValidTypes = map[string]bool{
	TypeNewEntry:    true,
	TypeFollowAlert: true,
	TypeOther:       true,
}

// Notification is addressed to one recipient. EntryID is set when the
// event concerns an entry.
type Notification struct {
	ID          uuid.UUID  `json:"id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	ActorID     uuid.UUID  `json:"actor_id"`
	Type        string     `json:"type"`
	EntryID     *uuid.UUID `json:"entry_id,omitempty"`
	Message     string     `json:"message"`
	Read        bool       `json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
