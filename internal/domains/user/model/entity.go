package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account. A private account hides the profile and all
// of its entries from everyone but the owner.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsPrivate    bool      `json:"private"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
