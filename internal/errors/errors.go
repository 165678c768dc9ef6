// Package errors provides a small structured error type used by the CLI to
// classify failures and choose exit codes.
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/skelly-dev/javadoclink/pkg/javadoclink"
)

// Category classifies an error for presentation and exit codes.
type Category string

const (
	CategoryValidation  Category = "validation"
	CategoryUnsupported Category = "unsupported"
	CategoryConfig      Category = "config"
	CategoryFileSystem  Category = "filesystem"
	CategoryParse       Category = "parse"
	CategoryInternal    Category = "internal"
)

// ErrUnknownVersion is returned when a javadoc version is not supported.
var ErrUnknownVersion = stdErrors.New("unknown javadoc version")

// Error is a categorized error with optional cause and context.
type Error struct {
	Category Category       `json:"category"`
	Message  string         `json:"message"`
	Cause    error          `json:"-"`
	Context  map[string]any `json:"context,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds a context value and returns the error for chaining.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// New creates an Error without cause.
func New(category Category, message string) *Error {
	return &Error{Category: category, Message: message}
}

// Wrap creates an Error around cause.
func Wrap(cause error, category Category, message string) *Error {
	return &Error{Category: category, Message: message, Cause: cause}
}

// UnknownVersion reports an unsupported javadoc version.
func UnknownVersion(version string) *Error {
	return Wrap(ErrUnknownVersion, CategoryValidation, fmt.Sprintf("version %q is not supported", version)).
		WithContext("version", version)
}

// ConfigError wraps configuration loading failures.
func ConfigError(cause error) *Error {
	return Wrap(cause, CategoryConfig, "failed to load configuration")
}

// Classify returns the category of err. Link generation sentinels are mapped
// even when they are not wrapped in an *Error.
func Classify(err error) Category {
	if err == nil {
		return ""
	}
	var e *Error
	if stdErrors.As(err, &e) {
		return e.Category
	}
	switch {
	case stdErrors.Is(err, javadoclink.ErrInvalidDescriptor), stdErrors.Is(err, ErrUnknownVersion):
		return CategoryValidation
	case stdErrors.Is(err, javadoclink.ErrUnsupportedOperation):
		return CategoryUnsupported
	default:
		return CategoryInternal
	}
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch Classify(err) {
	case CategoryValidation:
		return 2
	case CategoryUnsupported:
		return 3
	case CategoryConfig:
		return 7
	case CategoryFileSystem, CategoryParse:
		return 11
	case CategoryInternal:
		return 10
	default:
		return 1
	}
}
