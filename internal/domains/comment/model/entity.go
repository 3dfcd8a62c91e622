package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment belongs to an entry. Its visibility follows the entry's: whoever
// may read the entry may read its comments.
type Comment struct {
	ID       uuid.UUID `json:"id"`
	EntryID  uuid.UUID `json:"entry_id"`
	AuthorID uuid.UUID `json:"author_id"`
	Author   string    `json:"author"`

	Text string `json:"text"`

	LikeCount int         `json:"like_count"`
	LikedBy   []uuid.UUID `json:"liked_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
