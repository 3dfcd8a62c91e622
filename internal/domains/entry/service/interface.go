package service

import (
	"context"

	"github.com/google/uuid"

	"journal-backend/internal/domains/entry/model"
	userModel "journal-backend/internal/domains/user/model"
	"journal-backend/internal/shared"
	"journal-backend/internal/shared/query"
)

// FanOutEnqueuer queues follower notification delivery for a new entry.
// Satisfied by the queue client; the worker binary runs without one.
type FanOutEnqueuer interface {
	EnqueueEntryFanOut(payload shared.EntryFanOutPayload) error
}

// AuthorDirectory resolves the account a new entry inherits its privacy
// from. Satisfied by the user repository.
type AuthorDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*userModel.User, error)
}

type EntryService interface {
	// Feed
	List(ctx context.Context, viewer *uuid.UUID, req model.ListEntriesRequest) (query.Page[model.EntryResponse], error)
	MostLiked(ctx context.Context, viewer *uuid.UUID, authorID uuid.UUID, count int) ([]model.EntryResponse, error)
	Get(ctx context.Context, viewer *uuid.UUID, id uuid.UUID) (*model.EntryResponse, error)

	// Authoring
	Create(ctx context.Context, authorID uuid.UUID, req model.CreateEntryRequest) (*model.EntryResponse, error)
	Update(ctx context.Context, callerID, id uuid.UUID, req model.UpdateEntryRequest) (*model.EntryResponse, error)
	Delete(ctx context.Context, callerID, id uuid.UUID) error

	// Reactions
	Like(ctx context.Context, callerID, id uuid.UUID) (*model.EntryResponse, error)
	Unlike(ctx context.Context, callerID, id uuid.UUID) (*model.EntryResponse, error)
}
