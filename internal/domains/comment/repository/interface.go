package repository

import (
	"context"

	"github.com/google/uuid"

	"journal-backend/internal/domains/comment/model"
	"journal-backend/internal/shared/query"
)

type CommentRepository interface {
	// Create inserts a new comment.
	Create(ctx context.Context, comment *model.Comment) error

	// GetByID gets a comment with its author name and liker set.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)

	// ListByEntry pages an entry's comments in the given order.
	ListByEntry(ctx context.Context, entryID uuid.UUID, sort query.Sort, p query.Pagination) ([]*model.Comment, int64, error)

	// CountByEntry counts an entry's comments.
	CountByEntry(ctx context.Context, entryID uuid.UUID) (int64, error)

	// Update persists the comment text.
	Update(ctx context.Context, comment *model.Comment) error

	// Delete removes the comment and its likes, atomically.
	Delete(ctx context.Context, id uuid.UUID) error

	// Like records a like and bumps the counter in one transaction.
	Like(ctx context.Context, commentID, userID uuid.UUID) error

	// Unlike removes a like and lowers the counter in one transaction.
	Unlike(ctx context.Context, commentID, userID uuid.UUID) error
}
