package errors

import (
	stdErrors "errors"
	"fmt"
)

var (
	// ErrSourceUnreadable matches every SourceError.
	ErrSourceUnreadable = stdErrors.New("palette source unreadable")

	// ErrEmptyCatalog is returned when discovery yields no palette sources.
	ErrEmptyCatalog = stdErrors.New("no palettes found")
)

// ParseError represents a parsing failure (YAML config or palette tokens) with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SourceError reports a palette source that is missing or cannot be opened.
type SourceError struct {
	Source string
	Err    error
}

// NewSourceError constructs a SourceError for the given source identifier.
func NewSourceError(source string, err error) error {
	return &SourceError{Source: source, Err: err}
}

func (e *SourceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("cannot read palette %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("cannot read palette %s", e.Source)
}

// Unwrap exposes the underlying error.
func (e *SourceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is ErrSourceUnreadable.
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnreadable
}
