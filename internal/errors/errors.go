package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess          = 0 // Indicates successful execution.
	ExitErrorGeneric     = 1 // Indicates a generic error, including a failed renderer.
	ExitErrorConfig      = 4 // Indicates a configuration error.
	ExitErrorUnsupported = 5 // Indicates the host telemetry cannot be read.
)

// ConfigError represents a user configuration error, such as an unknown flag
// or a missing value. It indicates that the application cannot proceed due to
// incorrect user input.
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

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// UnsupportedPlatformError reports that the host telemetry could not be read
// at all, which means no metric can be produced on this system.
type UnsupportedPlatformError struct {
	// Cause is the error returned by the telemetry probe.
	Cause error
}

// Error returns a message naming the probe failure.
func (e UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("this OS is not supported: %v", e.Cause)
}

// Unwrap returns the probe failure.
func (e UnsupportedPlatformError) Unwrap() error { return e.Cause }

// RenderError encapsulates the failure of a single metric renderer while
// preserving the original cause. Any RenderError aborts the whole invocation.
type RenderError struct {
	// Metric is the name of the metric whose renderer failed (e.g., "net").
	Metric string
	// Cause is the underlying error that triggered this render error.
	Cause error
}

// Error returns the metric name followed by the cause.
func (e RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Metric, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e RenderError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCodeFor maps an error to the process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var (
		configErr      ConfigError
		validationErr  ValidationError
		unsupportedErr UnsupportedPlatformError
	)
	switch {
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	case errors.As(err, &unsupportedErr):
		return ExitErrorUnsupported
	default:
		return ExitErrorGeneric
	}
}
