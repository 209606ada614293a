package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound    = errors.New("resource not found")
	ErrRunNotFound = fmt.Errorf("%w: run", ErrNotFound)

	// Input validation errors
	ErrHeaderMismatch = errors.New("csv header mismatch")
	ErrRowShape       = errors.New("csv row shape mismatch")
	ErrNotANumber     = errors.New("not a valid number")
	ErrTooManyRows    = errors.New("sample capacity exceeded")
	ErrLineTooLong    = errors.New("input line too long")

	// Source errors
	ErrCannotOpen   = errors.New("cannot open input source")
	ErrPipelineMode = errors.New("pipeline mode not implemented")

	// Argument errors
	ErrBadArgument = errors.New("invalid command-line argument")
)

// InputError is a validation failure whose message is part of the tool's
// user-facing output. Error returns the message verbatim so callers can
// print it without rewording; Unwrap exposes the category sentinel for
// errors.Is checks.
type InputError struct {
	Kind    error
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Unwrap() error {
	return e.Kind
}

// NewInputError creates an InputError with a formatted message
func NewInputError(kind error, format string, args ...interface{}) *InputError {
	return &InputError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewArgumentError(message string) error {
	return &InputError{Kind: ErrBadArgument, Message: message}
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

func IsHeaderError(err error) bool {
	return errors.Is(err, ErrHeaderMismatch)
}

func IsRowError(err error) bool {
	return errors.Is(err, ErrRowShape) ||
		errors.Is(err, ErrNotANumber) ||
		errors.Is(err, ErrTooManyRows)
}
