package carousel

import (
	"errors"
	"fmt"
)

// Sentinel errors for caller contract violations. They are returned wrapped
// with context, so compare with errors.Is.
var (
	// ErrOutOfRange indicates a position outside [0, Count()).
	ErrOutOfRange = errors.New("position out of range")

	// ErrValueNotFound indicates no item carries the requested value.
	ErrValueNotFound = errors.New("no item with value")

	// ErrEmptySelector indicates an operation that needs at least one item.
	ErrEmptySelector = errors.New("selector has no items")

	// ErrDuplicateValue indicates two items in one SetItems call share a value.
	ErrDuplicateValue = errors.New("duplicate item value")
)

// InvalidConfigurationError reports a Settings field holding a value the
// selector does not understand, such as an unknown description gravity.
type InvalidConfigurationError struct {
	Field string // Settings field name, e.g. "DescriptionGravity"
	Value string // Offending value as supplied
	Err   error  // Optional underlying error
}

func (e *InvalidConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("carousel: invalid %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("carousel: invalid %s %q", e.Field, e.Value)
}

func (e *InvalidConfigurationError) Unwrap() error {
	return e.Err
}

// MarkupParseError reports a declarative item list that could not be turned
// into items. No items are produced when this error is returned.
type MarkupParseError struct {
	Source string // File path or other label for the input, may be empty
	Line   int    // 1-based line, 0 when unknown
	Column int    // 1-based column, 0 when unknown
	Err    error
}

func (e *MarkupParseError) Error() string {
	src := e.Source
	if src == "" {
		src = "<items>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("carousel: parse %s:%d:%d: %v", src, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("carousel: parse %s: %v", src, e.Err)
}

func (e *MarkupParseError) Unwrap() error {
	return e.Err
}

// IsOutOfRange reports whether err stems from an invalid position.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsValueNotFound reports whether err stems from an unmatched value lookup.
func IsValueNotFound(err error) bool {
	return errors.Is(err, ErrValueNotFound)
}

// IsEmptySelector reports whether err stems from accessing an empty selector.
func IsEmptySelector(err error) bool {
	return errors.Is(err, ErrEmptySelector)
}

// IsInvalidConfiguration reports whether err is an *InvalidConfigurationError.
func IsInvalidConfiguration(err error) bool {
	var cfgErr *InvalidConfigurationError
	return errors.As(err, &cfgErr)
}

// IsMarkupParseError reports whether err is a *MarkupParseError.
func IsMarkupParseError(err error) bool {
	var parseErr *MarkupParseError
	return errors.As(err, &parseErr)
}
