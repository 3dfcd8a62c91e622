package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeUserNotFound      = "USR001"
	ErrCodeUsernameTaken     = "USR002"
	ErrCodeEmailTaken        = "USR003"
	ErrCodeInvalidCredential = "USR004"
	ErrCodePrivateProfile    = "USR005"
)

// Errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPrivateProfile     = errors.New("this profile is private")
)

// UserError custom error type
type UserError struct {
	Code    string
	Message string
	Err     error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewUserNotFoundError() *UserError {
	return &UserError{
		Code:    ErrCodeUserNotFound,
		Message: "User not found",
		Err:     ErrUserNotFound,
	}
}

func NewUsernameTakenError(username string) *UserError {
	return &UserError{
		Code:    ErrCodeUsernameTaken,
		Message: fmt.Sprintf("Username %q is already taken", username),
		Err:     ErrUsernameTaken,
	}
}

func NewInvalidCredentialsError() *UserError {
	return &UserError{
		Code:    ErrCodeInvalidCredential,
		Message: "Invalid username or password",
		Err:     ErrInvalidCredentials,
	}
}
