package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeEntryNotFound = "ENT001"
	ErrCodePrivateEntry  = "ENT002"
	ErrCodeNotOwner      = "ENT003"
	ErrCodeAlreadyLiked  = "ENT004"
	ErrCodeNotLiked      = "ENT005"
	ErrCodeInvalidSort   = "ENT006"
	ErrCodeInvalidFilter = "ENT007"
)

// Errors
var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrPrivateEntry  = errors.New("this is a private entry")
	ErrNotOwner      = errors.New("not the entry owner")
	ErrAlreadyLiked  = errors.New("entry already liked")
	ErrNotLiked      = errors.New("entry not liked")
	ErrInvalidSort   = errors.New("invalid sort option")
	ErrInvalidFilter = errors.New("invalid time filter")
)

// EntryError custom error type
type EntryError struct {
	Code    string
	Message string
	Err     error
}

func (e *EntryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

func NewPrivateEntryError() *EntryError {
	return &EntryError{
		Code:    ErrCodePrivateEntry,
		Message: "This is a private entry",
		Err:     ErrPrivateEntry,
	}
}

func NewNotOwnerError() *EntryError {
	return &EntryError{
		Code:    ErrCodeNotOwner,
		Message: "You can only modify your own entries",
		Err:     ErrNotOwner,
	}
}
