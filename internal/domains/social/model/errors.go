package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeAlreadyFollowing = "SOC001"
	ErrCodeNotFollowing     = "SOC002"
	ErrCodeSelfFollow       = "SOC003"
	ErrCodeUserNotFound     = "SOC004"
)

// Errors
var (
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
	ErrCannotFollowSelf = errors.New("cannot follow yourself")
	ErrUserNotFound     = errors.New("user not found")
)

// SocialError custom error type
type SocialError struct {
	Code    string
	Message string
	Err     error
}

func (e *SocialError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *SocialError) Unwrap() error {
	return e.Err
}

func NewAlreadyFollowingError() *SocialError {
	return &SocialError{
		Code:    ErrCodeAlreadyFollowing,
		Message: "You are already following this user",
		Err:     ErrAlreadyFollowing,
	}
}

func NewNotFollowingError() *SocialError {
	return &SocialError{
		Code:    ErrCodeNotFollowing,
		Message: "You are not following this user",
		Err:     ErrNotFollowing,
	}
}
