package service

import (
	"context"

	"github.com/google/uuid"

	"journal-backend/internal/domains/comment/model"
	"journal-backend/internal/shared/query"
)

type CommentService interface {
	// Reading
	ListByEntry(ctx context.Context, viewer *uuid.UUID, entryID uuid.UUID, req model.ListCommentsRequest) (query.Page[model.CommentResponse], error)
	CountByEntry(ctx context.Context, viewer *uuid.UUID, entryID uuid.UUID) (int64, error)

	// Authoring
	Create(ctx context.Context, callerID, entryID uuid.UUID, req model.CreateCommentRequest) (*model.CommentResponse, error)
	Update(ctx context.Context, callerID, id uuid.UUID, req model.UpdateCommentRequest) (*model.CommentResponse, error)
	Delete(ctx context.Context, callerID, id uuid.UUID) error

	// Reactions
	Like(ctx context.Context, callerID, id uuid.UUID) (*model.CommentResponse, error)
	Unlike(ctx context.Context, callerID, id uuid.UUID) (*model.CommentResponse, error)
}
