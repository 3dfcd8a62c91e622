package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal-backend/internal/domains/comment/model"
	entryModel "journal-backend/internal/domains/entry/model"
	"journal-backend/internal/shared/query"
)

type stubCommentRepo struct {
	comments map[uuid.UUID]*model.Comment
	lastSort query.Sort
	likes    map[uuid.UUID]map[uuid.UUID]bool
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{
		comments: make(map[uuid.UUID]*model.Comment),
		likes:    make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

func (s *stubCommentRepo) Create(_ context.Context, comment *model.Comment) error {
	s.comments[comment.ID] = comment
	return nil
}

func (s *stubCommentRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Comment, error) {
	if c, ok := s.comments[id]; ok {
		return c, nil
	}
	return nil, model.ErrCommentNotFound
}

func (s *stubCommentRepo) ListByEntry(_ context.Context, entryID uuid.UUID, sort query.Sort, _ query.Pagination) ([]*model.Comment, int64, error) {
	s.lastSort = sort
	var out []*model.Comment
	for _, c := range s.comments {
		if c.EntryID == entryID {
			out = append(out, c)
		}
	}
	return out, int64(len(out)), nil
}

func (s *stubCommentRepo) CountByEntry(_ context.Context, entryID uuid.UUID) (int64, error) {
	var n int64
	for _, c := range s.comments {
		if c.EntryID == entryID {
			n++
		}
	}
	return n, nil
}

func (s *stubCommentRepo) Update(_ context.Context, comment *model.Comment) error {
	if _, ok := s.comments[comment.ID]; !ok {
		return model.ErrCommentNotFound
	}
	s.comments[comment.ID] = comment
	return nil
}

func (s *stubCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.comments[id]; !ok {
		return model.ErrCommentNotFound
	}
	delete(s.comments, id)
	return nil
}

func (s *stubCommentRepo) Like(_ context.Context, commentID, userID uuid.UUID) error {
	if s.likes[commentID] == nil {
		s.likes[commentID] = make(map[uuid.UUID]bool)
	}
	if s.likes[commentID][userID] {
		return model.ErrAlreadyLiked
	}
	s.likes[commentID][userID] = true
	return nil
}

func (s *stubCommentRepo) Unlike(_ context.Context, commentID, userID uuid.UUID) error {
	if !s.likes[commentID][userID] {
		return model.ErrNotLiked
	}
	delete(s.likes[commentID], userID)
	return nil
}

type stubEntryStore struct {
	entries map[uuid.UUID]*entryModel.Entry
}

func (s *stubEntryStore) GetByID(_ context.Context, id uuid.UUID) (*entryModel.Entry, error) {
	if e, ok := s.entries[id]; ok {
		return e, nil
	}
	return nil, entryModel.ErrEntryNotFound
}

func (s *stubEntryStore) Create(_ context.Context, _ *entryModel.Entry) error { return nil }
func (s *stubEntryStore) List(_ context.Context, _ query.Conjunction, _ query.Sort, _ query.Pagination) ([]*entryModel.Entry, int64, error) {
	return nil, 0, nil
}
func (s *stubEntryStore) MostLikedByAuthor(_ context.Context, _ query.Conjunction, _ int) ([]*entryModel.Entry, error) {
	return nil, nil
}
func (s *stubEntryStore) Update(_ context.Context, _ *entryModel.Entry) error { return nil }
func (s *stubEntryStore) Delete(_ context.Context, _ uuid.UUID) error         { return nil }
func (s *stubEntryStore) Like(_ context.Context, _, _ uuid.UUID) error        { return nil }
func (s *stubEntryStore) Unlike(_ context.Context, _, _ uuid.UUID) error      { return nil }

func setup() (*stubCommentRepo, *stubEntryStore, CommentService) {
	comments := newStubCommentRepo()
	entries := &stubEntryStore{entries: make(map[uuid.UUID]*entryModel.Entry)}
	return comments, entries, NewCommentService(comments, entries)
}

func TestCreateComment(t *testing.T) {
	ctx := context.Background()
	author := uuid.New()
	commenter := uuid.New()

	t.Run("succeeds on a visible entry", func(t *testing.T) {
		comments, entries, svc := setup()
		entry := &entryModel.Entry{ID: uuid.New(), AuthorID: author}
		entries.entries[entry.ID] = entry

		resp, err := svc.Create(ctx, commenter, entry.ID, model.CreateCommentRequest{Text: "nice one"})
		require.NoError(t, err)
		assert.Equal(t, "nice one", resp.Text)
		assert.Len(t, comments.comments, 1)
	})

	t.Run("fails when comments are disabled", func(t *testing.T) {
		_, entries, svc := setup()
		entry := &entryModel.Entry{ID: uuid.New(), AuthorID: author, CommentDisabled: true}
		entries.entries[entry.ID] = entry

		_, err := svc.Create(ctx, commenter, entry.ID, model.CreateCommentRequest{Text: "nope"})
		assert.ErrorIs(t, err, model.ErrCommentsDisabled)
	})

	t.Run("fails on an invisible entry", func(t *testing.T) {
		_, entries, svc := setup()
		entry := &entryModel.Entry{ID: uuid.New(), AuthorID: author, IsPrivate: true}
		entries.entries[entry.ID] = entry

		_, err := svc.Create(ctx, commenter, entry.ID, model.CreateCommentRequest{Text: "hello"})
		assert.ErrorIs(t, err, entryModel.ErrPrivateEntry)
	})

	t.Run("fails on a missing entry", func(t *testing.T) {
		_, _, svc := setup()

		_, err := svc.Create(ctx, commenter, uuid.New(), model.CreateCommentRequest{Text: "hello"})
		assert.ErrorIs(t, err, entryModel.ErrEntryNotFound)
	})
}

func TestListComments(t *testing.T) {
	ctx := context.Background()
	author := uuid.New()

	t.Run("defaults to most liked first", func(t *testing.T) {
		comments, entries, svc := setup()
		entry := &entryModel.Entry{ID: uuid.New(), AuthorID: author}
		entries.entries[entry.ID] = entry

		_, err := svc.ListByEntry(ctx, nil, entry.ID, model.ListCommentsRequest{})
		require.NoError(t, err)
		assert.Equal(t, query.Sort{Expression: "like_count", Descending: true}, comments.lastSort)
	})

	t.Run("private entry hides its comments", func(t *testing.T) {
		_, entries, svc := setup()
		entry := &entryModel.Entry{ID: uuid.New(), AuthorID: author, IsPrivate: true}
		entries.entries[entry.ID] = entry

		_, err := svc.ListByEntry(ctx, nil, entry.ID, model.ListCommentsRequest{})
		assert.ErrorIs(t, err, entryModel.ErrPrivateEntry)
	})
}

func TestDeleteComment(t *testing.T) {
	ctx := context.Background()
	entryAuthor := uuid.New()
	commenter := uuid.New()
	stranger := uuid.New()

	newFixture := func() (CommentService, uuid.UUID) {
		comments, entries, svc := setup()
		entry := &entryModel.Entry{ID: uuid.New(), AuthorID: entryAuthor}
		entries.entries[entry.ID] = entry

		comment := &model.Comment{
			ID:        uuid.New(),
			EntryID:   entry.ID,
			AuthorID:  commenter,
			Text:      "hi",
			CreatedAt: time.Now(),
		}
		comments.comments[comment.ID] = comment
		return svc, comment.ID
	}

	t.Run("comment author may delete", func(t *testing.T) {
		svc, id := newFixture()
		assert.NoError(t, svc.Delete(ctx, commenter, id))
	})

	t.Run("entry author may moderate", func(t *testing.T) {
		svc, id := newFixture()
		assert.NoError(t, svc.Delete(ctx, entryAuthor, id))
	})

	t.Run("stranger may not", func(t *testing.T) {
		svc, id := newFixture()
		assert.ErrorIs(t, svc.Delete(ctx, stranger, id), model.ErrNotOwner)
	})
}

func TestCommentLikePreconditions(t *testing.T) {
	ctx := context.Background()
	author := uuid.New()
	liker := uuid.New()

	comments, entries, svc := setup()
	entry := &entryModel.Entry{ID: uuid.New(), AuthorID: author}
	entries.entries[entry.ID] = entry
	comment := &model.Comment{ID: uuid.New(), EntryID: entry.ID, AuthorID: author, Text: "hi"}
	comments.comments[comment.ID] = comment

	_, err := svc.Unlike(ctx, liker, comment.ID)
	assert.ErrorIs(t, err, model.ErrNotLiked)

	_, err = svc.Like(ctx, liker, comment.ID)
	require.NoError(t, err)

	_, err = svc.Like(ctx, liker, comment.ID)
	assert.ErrorIs(t, err, model.ErrAlreadyLiked)
}
