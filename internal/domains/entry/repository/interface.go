package repository

import (
	"context"

	"github.com/google/uuid"

	"journal-backend/internal/domains/entry/model"
	"journal-backend/internal/shared/query"
)

type EntryRepository interface {
	// Create inserts a new entry.
	Create(ctx context.Context, entry *model.Entry) error

	// GetByID gets an entry with its author name and liker set.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Entry, error)

	// List runs the compiled feed query: filters, ordering, paging.
	List(ctx context.Context, filters query.Conjunction, sort query.Sort, p query.Pagination) ([]*model.Entry, int64, error)

	// MostLikedByAuthor returns the author's top entries by like count,
	// restricted by the given visibility filters.
	MostLikedByAuthor(ctx context.Context, filters query.Conjunction, limit int) ([]*model.Entry, error)

	// Update persists title, text and flags.
	Update(ctx context.Context, entry *model.Entry) error

	// Delete removes the entry with its comments and likes, atomically.
	Delete(ctx context.Context, id uuid.UUID) error

	// Like records a like and bumps the counter in one transaction.
	// Fails with ErrAlreadyLiked on a duplicate.
	Like(ctx context.Context, entryID, userID uuid.UUID) error

	// Unlike removes a like and lowers the counter in one transaction.
	// Fails with ErrNotLiked when no like exists.
	Unlike(ctx context.Context, entryID, userID uuid.UUID) error
}
