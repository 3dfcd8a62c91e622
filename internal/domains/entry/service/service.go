package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"journal-backend/internal/domains/entry/model"
	"journal-backend/internal/domains/entry/repository"
	"journal-backend/internal/shared"
	"journal-backend/internal/shared/query"
)

const defaultMostLikedCount = 3

// entrySortFields whitelists the feed's sortable fields. Keys are the API
// names, values the SQL expressions they compile to.
var entrySortFields = map[string]string{
	"likes":     "like_count",
	"timestamp": "created_at",
}

// defaultEntrySort is newest-first.
var defaultEntrySort = query.Sort{Expression: "created_at", Descending: true}

type entryService struct {
	repo     repository.EntryRepository
	authors  AuthorDirectory
	enqueuer FanOutEnqueuer
}

// NewEntryService builds the feed service. enqueuer may be nil; fan-out is
// then skipped, which the worker binary relies on.
func NewEntryService(repo repository.EntryRepository, authors AuthorDirectory, enqueuer FanOutEnqueuer) EntryService {
	return &entryService{repo: repo, authors: authors, enqueuer: enqueuer}
}

// feedFilters compiles the request into the WHERE predicates. The privacy
// clause goes last so it constrains whatever the other filters selected.
// Private entries surface only when the feed is explicitly scoped to the
// viewer's own authorship; every other feed is public-only, even for the
// signed-in viewer browsing their own timeline unscoped.
func feedFilters(viewer *uuid.UUID, req model.ListEntriesRequest) query.Conjunction {
	filters := query.And(
		query.TimeWindow{Column: "e.created_at", Since: req.Since, Until: req.Until},
	)

	if req.AuthorID != nil {
		filters = filters.Append(query.AuthorEquals{Column: "e.author_id", AuthorID: *req.AuthorID})
	}

	if req.Following && viewer != nil {
		filters = filters.Append(query.FollowingMembership{Column: "e.author_id", FollowerID: *viewer})
	}

	if req.Search != "" {
		filters = filters.Append(query.TextSearch{Columns: []string{"e.title", "e.text"}, Needle: req.Search})
	}

	privacy := query.PrivacyClause{PrivateColumn: "e.is_private", AuthorColumn: "e.author_id"}
	if viewer != nil && req.AuthorID != nil && *req.AuthorID == *viewer {
		privacy.Viewer = viewer
	}

	return filters.Append(privacy)
}

// resolveTimeFilter turns a named window into explicit bounds. The named
// form wins over raw since/until, and its upper bound is always now so a
// window never admits future-dated rows.
func resolveTimeFilter(req *model.ListEntriesRequest) error {
	if req.TimeFilter == "" {
		return nil
	}

	now := time.Now()
	since, err := query.WindowSince(req.TimeFilter, now)
	if err != nil {
		return &model.EntryError{
			Code:    model.ErrCodeInvalidFilter,
			Message: err.Error(),
			Err:     model.ErrInvalidFilter,
		}
	}

	req.Since = since
	req.Until = &now
	return nil
}

func (s *entryService) List(ctx context.Context, viewer *uuid.UUID, req model.ListEntriesRequest) (query.Page[model.EntryResponse], error) {
	if err := resolveTimeFilter(&req); err != nil {
		return query.Page[model.EntryResponse]{}, err
	}

	sort, err := query.ParseSort(req.SortBy, req.SortOrder, req.SortOption, entrySortFields, defaultEntrySort)
	if err != nil {
		return query.Page[model.EntryResponse]{}, &model.EntryError{
			Code:    model.ErrCodeInvalidSort,
			Message: err.Error(),
			Err:     model.ErrInvalidSort,
		}
	}

	p := query.NewPagination(req.Page, req.PageSize)

	entries, total, err := s.repo.List(ctx, feedFilters(viewer, req), sort, p)
	if err != nil {
		return query.Page[model.EntryResponse]{}, err
	}

	return query.NewPage(toResponses(entries), p, total), nil
}

func (s *entryService) MostLiked(ctx context.Context, viewer *uuid.UUID, authorID uuid.UUID, count int) ([]model.EntryResponse, error) {
	if count < 1 {
		count = defaultMostLikedCount
	}

	filters := query.And(
		query.AuthorEquals{Column: "e.author_id", AuthorID: authorID},
		query.PrivacyClause{PrivateColumn: "e.is_private", AuthorColumn: "e.author_id", Viewer: viewer},
	)

	entries, err := s.repo.MostLikedByAuthor(ctx, filters, count)
	if err != nil {
		return nil, err
	}

	return toResponses(entries), nil
}

func (s *entryService) Get(ctx context.Context, viewer *uuid.UUID, id uuid.UUID) (*model.EntryResponse, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !query.CanView(viewer, entry.AuthorID, entry.IsPrivate) {
		return nil, model.NewPrivateEntryError()
	}

	resp := entry.ToResponse()
	return &resp, nil
}

func (s *entryService) Create(ctx context.Context, authorID uuid.UUID, req model.CreateEntryRequest) (*model.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Privacy is copied from the author's account at creation time. It
	// is not live-linked afterwards; only the account-level cascade
	// changes it.
	author, err := s.authors.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &model.Entry{
		ID:              uuid.New(),
		AuthorID:        authorID,
		Title:           req.Title,
		Text:            req.Text,
		IsPrivate:       author.IsPrivate,
		CommentDisabled: req.CommentDisabled,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	log.Info().
		Str("entry_id", entry.ID.String()).
		Str("author_id", authorID.String()).
		Bool("private", entry.IsPrivate).
		Msg("entry created")

	// Followers are only told about public entries. Delivery is
	// best-effort: the entry is already committed.
	if !entry.IsPrivate && s.enqueuer != nil {
		err := s.enqueuer.EnqueueEntryFanOut(shared.EntryFanOutPayload{
			EntryID:  entry.ID.String(),
			AuthorID: authorID.String(),
			Title:    entry.Title,
		})
		if err != nil {
			log.Warn().Err(err).Str("entry_id", entry.ID.String()).Msg("fan-out enqueue failed")
		}
	}

	return s.Get(ctx, &authorID, entry.ID)
}

func (s *entryService) Update(ctx context.Context, callerID, id uuid.UUID, req model.UpdateEntryRequest) (*model.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.AuthorID != callerID {
		return nil, model.NewNotOwnerError()
	}

	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Text != nil {
		entry.Text = *req.Text
	}
	if req.CommentDisabled != nil {
		entry.CommentDisabled = *req.CommentDisabled
	}
	entry.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}

	resp := entry.ToResponse()
	return &resp, nil
}

func (s *entryService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry.AuthorID != callerID {
		return model.NewNotOwnerError()
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("entry_id", id.String()).Msg("entry deleted")
	return nil
}

func (s *entryService) Like(ctx context.Context, callerID, id uuid.UUID) (*model.EntryResponse, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !query.CanView(&callerID, entry.AuthorID, entry.IsPrivate) {
		return nil, model.NewPrivateEntryError()
	}

	if err := s.repo.Like(ctx, id, callerID); err != nil {
		return nil, err
	}

	return s.Get(ctx, &callerID, id)
}

func (s *entryService) Unlike(ctx context.Context, callerID, id uuid.UUID) (*model.EntryResponse, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !query.CanView(&callerID, entry.AuthorID, entry.IsPrivate) {
		return nil, model.NewPrivateEntryError()
	}

	if err := s.repo.Unlike(ctx, id, callerID); err != nil {
		return nil, err
	}

	return s.Get(ctx, &callerID, id)
}

func toResponses(entries []*model.Entry) []model.EntryResponse {
	responses := make([]model.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, entry.ToResponse())
	}
	return responses
}
