package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journal-backend/internal/domains/social/model"
	"journal-backend/internal/shared/query"
)

type stubSocialRepo struct {
	edges            map[uuid.UUID]map[uuid.UUID]bool
	followingIDCalls int
}

func newStubSocialRepo() *stubSocialRepo {
	return &stubSocialRepo{edges: make(map[uuid.UUID]map[uuid.UUID]bool)}
}

func (s *stubSocialRepo) Follow(_ context.Context, followerID, followeeID uuid.UUID) error {
	if s.edges[followerID][followeeID] {
		return model.ErrAlreadyFollowing
	}
	if s.edges[followerID] == nil {
		s.edges[followerID] = make(map[uuid.UUID]bool)
	}
	s.edges[followerID][followeeID] = true
	return nil
}

func (s *stubSocialRepo) Unfollow(_ context.Context, followerID, followeeID uuid.UUID) error {
	if !s.edges[followerID][followeeID] {
		return model.ErrNotFollowing
	}
	delete(s.edges[followerID], followeeID)
	return nil
}

func (s *stubSocialRepo) IsFollowing(_ context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	return s.edges[followerID][followeeID], nil
}

func (s *stubSocialRepo) Followers(_ context.Context, _ uuid.UUID, _ query.Pagination) ([]model.FollowUser, int64, error) {
	return nil, 0, nil
}

func (s *stubSocialRepo) Following(_ context.Context, _ uuid.UUID, _ query.Pagination) ([]model.FollowUser, int64, error) {
	return nil, 0, nil
}

func (s *stubSocialRepo) FollowerIDs(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

func (s *stubSocialRepo) FollowingIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	s.followingIDCalls++
	var ids []uuid.UUID
	for id := range s.edges[userID] {
		ids = append(ids, id)
	}
	return ids, nil
}

// memoryCache is a minimal in-process stand-in for Redis.
type memoryCache struct {
	values map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string][]byte)}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	data, ok := m.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = data
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

func (m *memoryCache) Ping(_ context.Context) error { return nil }

func TestFollow(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	t.Run("self follow is rejected before the repository", func(t *testing.T) {
		repo := newStubSocialRepo()
		svc := NewSocialService(repo, newMemoryCache(), nil)

		err := svc.Follow(ctx, alice, alice)
		assert.ErrorIs(t, err, model.ErrCannotFollowSelf)
		assert.Empty(t, repo.edges)
	})

	t.Run("double follow fails", func(t *testing.T) {
		svc := NewSocialService(newStubSocialRepo(), newMemoryCache(), nil)

		require.NoError(t, svc.Follow(ctx, alice, bob))
		assert.ErrorIs(t, svc.Follow(ctx, alice, bob), model.ErrAlreadyFollowing)
	})

	t.Run("unfollow without follow fails", func(t *testing.T) {
		svc := NewSocialService(newStubSocialRepo(), newMemoryCache(), nil)

		assert.ErrorIs(t, svc.Unfollow(ctx, alice, bob), model.ErrNotFollowing)
	})
}

type stubAlertRecorder struct {
	recipients []uuid.UUID
	actors     []uuid.UUID
}

func (s *stubAlertRecorder) RecordFollowAlert(_ context.Context, recipientID, actorID uuid.UUID) error {
	s.recipients = append(s.recipients, recipientID)
	s.actors = append(s.actors, actorID)
	return nil
}

func TestFollowAlert(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	t.Run("followee is alerted", func(t *testing.T) {
		alerts := &stubAlertRecorder{}
		svc := NewSocialService(newStubSocialRepo(), newMemoryCache(), alerts)

		require.NoError(t, svc.Follow(ctx, alice, bob))

		require.Len(t, alerts.recipients, 1)
		assert.Equal(t, bob, alerts.recipients[0])
		assert.Equal(t, alice, alerts.actors[0])
	})

	t.Run("failed follow raises nothing", func(t *testing.T) {
		alerts := &stubAlertRecorder{}
		repo := newStubSocialRepo()
		svc := NewSocialService(repo, newMemoryCache(), alerts)

		require.NoError(t, svc.Follow(ctx, alice, bob))
		require.Error(t, svc.Follow(ctx, alice, bob))

		assert.Len(t, alerts.recipients, 1)
	})
}

func TestFollowingIDsCaching(t *testing.T) {
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	repo := newStubSocialRepo()
	svc := NewSocialService(repo, newMemoryCache(), nil)

	require.NoError(t, svc.Follow(ctx, alice, bob))

	t.Run("second read is served from cache", func(t *testing.T) {
		_, err := svc.FollowingIDs(ctx, alice)
		require.NoError(t, err)
		_, err = svc.FollowingIDs(ctx, alice)
		require.NoError(t, err)

		assert.Equal(t, 1, repo.followingIDCalls)
	})

	t.Run("follow invalidates the cache", func(t *testing.T) {
		carol := uuid.New()
		require.NoError(t, svc.Follow(ctx, alice, carol))

		ids, err := svc.FollowingIDs(ctx, alice)
		require.NoError(t, err)

		assert.Equal(t, 2, repo.followingIDCalls)
		assert.Len(t, ids, 2)
	})

	t.Run("unfollow invalidates the cache", func(t *testing.T) {
		require.NoError(t, svc.Unfollow(ctx, alice, bob))

		ids, err := svc.FollowingIDs(ctx, alice)
		require.NoError(t, err)

		assert.Equal(t, 3, repo.followingIDCalls)
		assert.Len(t, ids, 1)
	})
}
