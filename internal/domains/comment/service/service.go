package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"journal-backend/internal/domains/comment/model"
	"journal-backend/internal/domains/comment/repository"
	entryModel "journal-backend/internal/domains/entry/model"
	entryRepository "journal-backend/internal/domains/entry/repository"
	"journal-backend/internal/shared/query"
)

var commentSortFields = map[string]string{
	"likes":     "like_count",
	"timestamp": "created_at",
}

// Comments default to most-liked first.
var defaultCommentSort = query.Sort{Expression: "like_count", Descending: true}

type commentService struct {
	repo    repository.CommentRepository
	entries entryRepository.EntryRepository
}

func NewCommentService(repo repository.CommentRepository, entries entryRepository.EntryRepository) CommentService {
	return &commentService{repo: repo, entries: entries}
}

// visibleEntry loads the entry and applies its visibility to the caller.
// Comment access always goes through here: whoever may read the entry may
// read and react to its comments.
func (s *commentService) visibleEntry(ctx context.Context, viewer *uuid.UUID, entryID uuid.UUID) (*entryModel.Entry, error) {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !query.CanView(viewer, entry.AuthorID, entry.IsPrivate) {
		return nil, entryModel.NewPrivateEntryError()
	}
	return entry, nil
}

func (s *commentService) ListByEntry(ctx context.Context, viewer *uuid.UUID, entryID uuid.UUID, req model.ListCommentsRequest) (query.Page[model.CommentResponse], error) {
	if _, err := s.visibleEntry(ctx, viewer, entryID); err != nil {
		return query.Page[model.CommentResponse]{}, err
	}

	sort, err := query.ParseSort(req.SortBy, req.SortOrder, req.SortOption, commentSortFields, defaultCommentSort)
	if err != nil {
		return query.Page[model.CommentResponse]{}, &model.CommentError{
			Code:    model.ErrCodeInvalidSort,
			Message: err.Error(),
			Err:     entryModel.ErrInvalidSort,
		}
	}

	p := query.NewPagination(req.Page, req.PageSize)

	comments, total, err := s.repo.ListByEntry(ctx, entryID, sort, p)
	if err != nil {
		return query.Page[model.CommentResponse]{}, err
	}

	responses := make([]model.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, comment.ToResponse())
	}

	return query.NewPage(responses, p, total), nil
}

func (s *commentService) CountByEntry(ctx context.Context, viewer *uuid.UUID, entryID uuid.UUID) (int64, error) {
	if _, err := s.visibleEntry(ctx, viewer, entryID); err != nil {
		return 0, err
	}
	return s.repo.CountByEntry(ctx, entryID)
}

func (s *commentService) Create(ctx context.Context, callerID, entryID uuid.UUID, req model.CreateCommentRequest) (*model.CommentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.visibleEntry(ctx, &callerID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.CommentDisabled {
		return nil, model.NewCommentsDisabledError()
	}

	now := time.Now().UTC()
	comment := &model.Comment{
		ID:        uuid.New(),
		EntryID:   entryID,
		AuthorID:  callerID,
		Text:      req.Text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	log.Info().
		Str("comment_id", comment.ID.String()).
		Str("entry_id", entryID.String()).
		Msg("comment created")

	return s.fetch(ctx, comment.ID)
}

func (s *commentService) Update(ctx context.Context, callerID, id uuid.UUID, req model.UpdateCommentRequest) (*model.CommentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != callerID {
		return nil, model.NewNotOwnerError()
	}

	comment.Text = req.Text
	comment.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, err
	}

	resp := comment.ToResponse()
	return &resp, nil
}

// Delete allows the comment author and the entry author, so entry owners
// can moderate their own entries.
func (s *commentService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if comment.AuthorID != callerID {
		entry, err := s.entries.GetByID(ctx, comment.EntryID)
		if err != nil {
			return err
		}
		if entry.AuthorID != callerID {
			return model.NewNotOwnerError()
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("comment_id", id.String()).Msg("comment deleted")
	return nil
}

func (s *commentService) Like(ctx context.Context, callerID, id uuid.UUID) (*model.CommentResponse, error) {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.visibleEntry(ctx, &callerID, comment.EntryID); err != nil {
		return nil, err
	}

	if err := s.repo.Like(ctx, id, callerID); err != nil {
		return nil, err
	}

	return s.fetch(ctx, id)
}

func (s *commentService) Unlike(ctx context.Context, callerID, id uuid.UUID) (*model.CommentResponse, error) {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.visibleEntry(ctx, &callerID, comment.EntryID); err != nil {
		return nil, err
	}

	if err := s.repo.Unlike(ctx, id, callerID); err != nil {
		return nil, err
	}

	return s.fetch(ctx, id)
}

func (s *commentService) fetch(ctx context.Context, id uuid.UUID) (*model.CommentResponse, error) {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := comment.ToResponse()
	return &resp, nil
}
