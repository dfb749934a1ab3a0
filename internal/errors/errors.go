package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
const (
	ExitSuccess           = 0 // Indicates successful execution.
	ExitErrorGeneric      = 1 // Indicates a generic error.
	ExitErrorMismatch     = 3 // Indicates a result mismatch between Fibonacci variants.
	ExitErrorConfig       = 4 // Indicates a configuration error.
	ExitErrorInvalidInput = 5 // Indicates input rejected by an algorithm.
)

// ErrInvalidArgument is the single domain error kind. Every InvalidArgumentError
// matches it under errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports structurally invalid input to one of the
// algorithms: a negative Fibonacci index, a non-positive deadline, a
// non-positive weight or a negative capacity.
type InvalidArgumentError struct {
	// Field names the offending input (e.g. "n", "jobs[2].deadline").
	Field string
	// Message explains the violated constraint.
	Message string
}

// Error returns a formatted message describing the invalid argument.
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Message)
}

// Is reports whether target is ErrInvalidArgument.
func (e InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgument creates an InvalidArgumentError for field with a
// formatted message.
func NewInvalidArgument(field, format string, a ...any) error {
	return InvalidArgumentError{Field: field, Message: fmt.Sprintf(format, a...)}
}

// ConfigError represents a user configuration error, such as invalid flags,
// an unparsable job list or an unreadable input file. It indicates that the
// application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// MemoryError represents a dynamic programming table that would exceed the
// configured memory limit.
type MemoryError struct {
	// Requested is the number of bytes the table needs.
	Requested uint64
	// Limit is the configured memory limit in bytes.
	Limit uint64
}

// Error returns a formatted message describing the memory error.
func (e MemoryError) Error() string {
	return fmt.Sprintf("memory error: table needs %d bytes (limit: %d)", e.Requested, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCodeFor maps an error chain to the process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var configErr ConfigError
	var memErr MemoryError
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return ExitErrorInvalidInput
	case errors.As(err, &configErr), errors.As(err, &memErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
