package service

import (
	"context"

	"github.com/google/uuid"

	"journal-backend/internal/domains/social/model"
	"journal-backend/internal/shared/query"
)

// FollowAlertRecorder decouples the follow path from the notification
// domain. May be nil when alerts are not wired.
type FollowAlertRecorder interface {
	RecordFollowAlert(ctx context.Context, recipientID, actorID uuid.UUID) error
}

type SocialService interface {
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error
	IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)

	Followers(ctx context.Context, userID uuid.UUID, page, pageSize int) (query.Page[model.FollowUser], error)
	Following(ctx context.Context, userID uuid.UUID, page, pageSize int) (query.Page[model.FollowUser], error)

	// FollowingIDs returns the followee set, served from cache when warm.
	FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
