package model

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed edge in the social graph: follower sees the
// followee's public entries in their feed.
type Follow struct {
	FollowerID uuid.UUID `json:"follower_id"`
	FolloweeID uuid.UUID `json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// FollowUser is the profile summary shown in follower/following lists.
type FollowUser struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Private    bool      `json:"private"`
	FollowedAt time.Time `json:"followed_at"`
}
