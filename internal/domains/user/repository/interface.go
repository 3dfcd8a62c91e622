package repository

import (
	"context"

	"github.com/google/uuid"

	"journal-backend/internal/domains/user/model"
	"journal-backend/internal/shared/query"
)

type UserRepository interface {
	// Create inserts a new account.
	Create(ctx context.Context, user *model.User) error

	// GetByID gets a user by id.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByUsername gets a user by username, case-insensitively.
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// List pages through profiles visible to the viewer. Private profiles
	// are included only for their owner.
	List(ctx context.Context, viewer *uuid.UUID, search string, p query.Pagination) ([]*model.User, int64, error)

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// UpdatePrivacy flips the account's private flag and cascades it to
	// every entry the user owns, atomically.
	UpdatePrivacy(ctx context.Context, id uuid.UUID, private bool) error

	// Delete removes the account and everything attached to it: entries,
	// comments, likes, follow edges and notifications.
	Delete(ctx context.Context, id uuid.UUID) error
}
