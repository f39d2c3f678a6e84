// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Store errors.
	ErrNotFound    = errors.New("record not found")
	ErrDuplicateID = errors.New("duplicate record id")

	// Validation errors.
	ErrValidation = errors.New("validation failed")

	// Persistence errors.
	ErrSaveFailed     = errors.New("save failed")
	ErrInvalidPayload = errors.New("invalid payload")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// NewValidationError reports a rejected user input. The store is left
// unchanged whenever one of these is returned.
func NewValidationError(message string) error {
	return &UserError{
		UserMessage: message,
		Err:         ErrValidation,
	}
}
