package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeNotificationNotFound = "NTF001"
	ErrCodeInvalidType          = "NTF002"
	ErrCodeNotRecipient         = "NTF003"
	ErrCodeRecipientNotFound    = "NTF004"
)

// Errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidType          = errors.New("invalid notification type")
	ErrNotRecipient         = errors.New("not the notification recipient")
	ErrRecipientNotFound    = errors.New("recipient not found")
)

// NotificationError custom error type
type NotificationError struct {
	Code    string
	Message string
	Err     error
}

func (e *NotificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}

func NewInvalidTypeError(t string) *NotificationError {
	return &NotificationError{
		Code:    ErrCodeInvalidType,
		Message: fmt.Sprintf("Invalid notification type %q", t),
		Err:     ErrInvalidType,
	}
}
