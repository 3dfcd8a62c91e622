package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// ========================================
// REQUEST DTOs
// ========================================

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
			validation.Length(1, 5000).Error("text must be 1-5000 characters"),
		),
	)
}

type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

func (r UpdateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
			validation.Length(1, 5000).Error("text must be 1-5000 characters"),
		),
	)
}

// ListCommentsRequest pages an entry's comments. Most-liked first is the
// default ordering.
type ListCommentsRequest struct {
	SortBy     string `form:"sortBy"`
	SortOrder  string `form:"sortOrder"`
	SortOption string `form:"sort"`

	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// ========================================
// RESPONSE DTOs
// ========================================

type CommentResponse struct {
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

func (c *Comment) ToResponse() CommentResponse {
	likedBy := c.LikedBy
	if likedBy == nil {
		likedBy = []uuid.UUID{}
	}

	return CommentResponse{
		ID:        c.ID,
		EntryID:   c.EntryID,
		AuthorID:  c.AuthorID,
		Author:    c.Author,
		Text:      c.Text,
		LikeCount: c.LikeCount,
		LikedBy:   likedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
