package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// ========================================
// REQUEST DTOs
// ========================================

// CreateEntryRequest carries no privacy flag: a new entry copies the
// author's account setting, so private users never post publicly by
// accident.
type CreateEntryRequest struct {
	Title           string `json:"title" binding:"required"`
	Text            string `json:"text" binding:"required"`
	CommentDisabled bool   `json:"comment_disabled"`
}

func (r CreateEntryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200).Error("title must be 1-200 characters"),
		),
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
			validation.Length(1, 20000).Error("text must be 1-20000 characters"),
		),
	)
}

// UpdateEntryRequest edits content only. Privacy is not a per-entry
// knob; it changes through the account-level cascade.
type UpdateEntryRequest struct {
	Title           *string `json:"title"`
	Text            *string `json:"text"`
	CommentDisabled *bool   `json:"comment_disabled"`
}

func (r UpdateEntryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil, validation.Length(1, 200).Error("title must be 1-200 characters")),
		),
		validation.Field(&r.Text,
			validation.When(r.Text != nil, validation.Length(1, 20000).Error("text must be 1-20000 characters")),
		),
	)
}

// ListEntriesRequest is the feed query. All filters are optional and
// combine with AND; visibility is always applied on top of them.
type ListEntriesRequest struct {
	AuthorID   *uuid.UUID `form:"authorId"`
	Following  bool       `form:"following"`
	TimeFilter string     `form:"timeFilter"`
	Since      *time.Time `form:"since" time_format:"2006-01-02T15:04:05Z07:00"`
	Until      *time.Time `form:"until" time_format:"2006-01-02T15:04:05Z07:00"`
	Search     string     `form:"search"`

	SortBy     string `form:"sortBy"`
	SortOrder  string `form:"sortOrder"`
	SortOption string `form:"sort"`

	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// ========================================
// RESPONSE DTOs
// ========================================

type EntryResponse struct {
	ID       uuid.UUID `json:"id"`
	AuthorID uuid.UUID `json:"author_id"`
	Author   string    `json:"author"`

	Title string `json:"title"`
	Text  string `json:"text"`

	Private         bool `json:"private"`
	CommentDisabled bool `json:"comment_disabled"`

	LikeCount int         `json:"like_count"`
	LikedBy   []uuid.UUID `json:"liked_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Entry) ToResponse() EntryResponse {
	likedBy := e.LikedBy
	if likedBy == nil {
		likedBy = []uuid.UUID{}
	}

	return EntryResponse{
		ID:              e.ID,
		AuthorID:        e.AuthorID,
		Author:          e.Author,
		Title:           e.Title,
		Text:            e.Text,
		Private:         e.IsPrivate,
		CommentDisabled: e.CommentDisabled,
		LikeCount:       e.LikeCount,
		LikedBy:         likedBy,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
