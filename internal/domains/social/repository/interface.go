package repository

import (
	"context"

	"github.com/google/uuid"

	"journal-backend/internal/domains/social/model"
	"journal-backend/internal/shared/query"
)

type SocialRepository interface {
	// Follow inserts the edge. Fails with ErrAlreadyFollowing if it exists
	// and ErrCannotFollowSelf for a self-edge.
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) error

	// Unfollow removes the edge. Fails with ErrNotFollowing if absent.
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error

	// IsFollowing reports whether the edge exists.
	IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)

	// Followers pages through the users following userID.
	Followers(ctx context.Context, userID uuid.UUID, p query.Pagination) ([]model.FollowUser, int64, error)

	// Following pages through the users userID follows.
	Following(ctx context.Context, userID uuid.UUID, p query.Pagination) ([]model.FollowUser, int64, error)

	// FollowerIDs returns every follower id, for notification fan-out.
	FollowerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// FollowingIDs returns every followee id.
	FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
