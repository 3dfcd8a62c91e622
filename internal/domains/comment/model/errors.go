package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeCommentNotFound  = "CMT001"
	ErrCodeAlreadyLiked     = "CMT002"
	ErrCodeNotLiked         = "CMT003"
	ErrCodeNotOwner         = "CMT004"
	ErrCodeCommentsDisabled = "CMT005"
	ErrCodeInvalidSort      = "CMT006"
)

// Errors
var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrAlreadyLiked     = errors.New("comment already liked")
	ErrNotLiked         = errors.New("comment not liked")
	ErrNotOwner         = errors.New("not the comment owner")
	ErrCommentsDisabled = errors.New("comments are disabled on this entry")
)

// CommentError custom error type
type CommentError struct {
	Code    string
	Message string
	Err     error
}

func (e *CommentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CommentError) Unwrap() error {
	return e.Err
}

func NewNotOwnerError() *CommentError {
	return &CommentError{
		Code:    ErrCodeNotOwner,
		Message: "You can only modify your own comments",
		Err:     ErrNotOwner,
	}
}

func NewCommentsDisabledError() *CommentError {
	return &CommentError{
		Code:    ErrCodeCommentsDisabled,
		Message: "Comments are disabled on this entry",
		Err:     ErrCommentsDisabled,
	}
}
