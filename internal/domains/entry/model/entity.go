package model

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a journal post. LikeCount is denormalized and kept in step
// with entry_likes inside the like/unlike transaction, so sorting by
// popularity never aggregates.
type Entry struct {
	ID       uuid.UUID `json:"id"`
	AuthorID uuid.UUID `json:"author_id"`
	Author   string    `json:"author"`

	Title string `json:"title"`
	Text  string `json:"text"`

	IsPrivate       bool `json:"private"`
	CommentDisabled bool `json:"comment_disabled"`

	LikeCount int         `json:"like_count"`
	LikedBy   []uuid.UUID `json:"liked_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
