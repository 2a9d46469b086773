package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrValidation          = errors.New("validation error")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrForbidden           = errors.New("forbidden")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// Uniqueness violations. Both match ErrAlreadyExists via errors.Is.
var (
	ErrDuplicateEmail    = fmt.Errorf("email %w", ErrAlreadyExists)
	ErrDuplicateUsername = fmt.Errorf("username %w", ErrAlreadyExists)

	// ErrEmailInUse is returned when a profile update targets another
	// account's email. It matches ErrDuplicateEmail.
	ErrEmailInUse = fmt.Errorf("in use: %w", ErrDuplicateEmail)
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Messages joins every field message in order, the way they are reported
// to API clients.
func (e *ValidationError) Messages() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, ", ")
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ArgumentError is an ErrInvalidArgument with a client-facing message.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string { return "invalid argument: " + e.Message }

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// NewArgumentError creates an ArgumentError.
func NewArgumentError(message string) *ArgumentError {
	return &ArgumentError{Message: message}
}
