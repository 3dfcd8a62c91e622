package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"journal-backend/internal/domains/social/model"
	"journal-backend/internal/domains/social/repository"
	"journal-backend/internal/shared/query"
	"journal-backend/pkg/cache"
)

const followingCacheTTL = 5 * time.Minute

type socialService struct {
	repo   repository.SocialRepository
	cache  cache.Cache
	alerts FollowAlertRecorder
}

func NewSocialService(repo repository.SocialRepository, cache cache.Cache, alerts FollowAlertRecorder) SocialService {
	return &socialService{repo: repo, cache: cache, alerts: alerts}
}

func followingCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("social:following:%s", userID)
}

func (s *socialService) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if followerID == followeeID {
		return model.ErrCannotFollowSelf
	}

	if err := s.repo.Follow(ctx, followerID, followeeID); err != nil {
		return err
	}

	s.invalidateFollowing(ctx, followerID)

	// The edge is already committed; the alert is best-effort.
	if s.alerts != nil {
		if err := s.alerts.RecordFollowAlert(ctx, followeeID, followerID); err != nil {
			log.Warn().Err(err).Msg("follow alert failed")
		}
	}

	log.Info().
		Str("follower_id", followerID.String()).
		Str("followee_id", followeeID.String()).
		Msg("follow created")

	return nil
}

func (s *socialService) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if err := s.repo.Unfollow(ctx, followerID, followeeID); err != nil {
		return err
	}

	s.invalidateFollowing(ctx, followerID)

	log.Info().
		Str("follower_id", followerID.String()).
		Str("followee_id", followeeID.String()).
		Msg("follow removed")

	return nil
}

func (s *socialService) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	return s.repo.IsFollowing(ctx, followerID, followeeID)
}

func (s *socialService) Followers(ctx context.Context, userID uuid.UUID, page, pageSize int) (query.Page[model.FollowUser], error) {
	p := query.NewPagination(page, pageSize)

	users, total, err := s.repo.Followers(ctx, userID, p)
	if err != nil {
		return query.Page[model.FollowUser]{}, err
	}

	return query.NewPage(users, p, total), nil
}

func (s *socialService) Following(ctx context.Context, userID uuid.UUID, page, pageSize int) (query.Page[model.FollowUser], error) {
	p := query.NewPagination(page, pageSize)

	users, total, err := s.repo.Following(ctx, userID, p)
	if err != nil {
		return query.Page[model.FollowUser]{}, err
	}

	return query.NewPage(users, p, total), nil
}

// FollowingIDs caches the followee set; follows and unfollows invalidate
// it, so a short TTL only bounds staleness from writes outside this
// process.
func (s *socialService) FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	key := followingCacheKey(userID)

	var cached []uuid.UUID
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	if found {
		return cached, nil
	}

	ids, err := s.repo.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, ids, followingCacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}

	return ids, nil
}

func (s *socialService) invalidateFollowing(ctx context.Context, followerID uuid.UUID) {
	if err := s.cache.Delete(ctx, followingCacheKey(followerID)); err != nil {
		log.Warn().Err(err).Msg("cache invalidation failed")
	}
}
