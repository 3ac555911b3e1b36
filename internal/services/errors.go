package services

import (
	"errors"
	"fmt"
)

var (
	ErrUserExists         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrNotPhotographer = errors.New("photographer profile required")
	ErrInUse           = errors.New("record is still referenced")

	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("booking status transition not allowed")
	ErrConflict          = errors.New("booking was modified concurrently")
	ErrCategoryMismatch  = errors.New("category does not belong to photographer")
	ErrSelfBooking       = errors.New("photographers cannot book themselves")

	ErrNoFile           = errors.New("no file selected")
	ErrFileTooLarge     = errors.New("file too large")
	ErrUnsupportedMedia = errors.New("file is not a supported image")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
