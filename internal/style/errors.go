package style

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by [ParseError]. Match them with [errors.Is].
var (
	// ErrMissingSeparator is returned for a non-comment line without ':'.
	ErrMissingSeparator = errors.New("missing ':' separator")

	// ErrInvalidKey is returned when the text before ':' is not a dotted
	// identifier such as "axes.formatter.limits".
	ErrInvalidKey = errors.New("invalid setting key")

	// ErrDuplicateKey is returned for a repeated key when duplicates are
	// rejected (see [WithDuplicates]).
	ErrDuplicateKey = errors.New("duplicate setting key")

	// ErrInvalidEncoding is returned for a line that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("line is not valid UTF-8")

	// ErrLineTooLong is returned when a single line exceeds the reader limit.
	ErrLineTooLong = errors.New("line too long")
)

// ErrInvalidValue is returned by [New] for a value that cannot be written
// back to a single rc line.
var ErrInvalidValue = errors.New("invalid setting value")

// ErrUnknownDuplicatePolicy is returned by [ParseDuplicatePolicy].
var ErrUnknownDuplicatePolicy = errors.New("unknown duplicate key policy")

// ParseError reports a malformed line. Parsing stops at the first one and
// no partial document is returned.
type ParseError struct {
	// Source names the input (usually a file path); empty for readers.
	Source string
	// Line is the 1-based line number.
	Line int
	// Content is the raw line as read.
	Content string
	// Err is one of the sentinel errors above.
	Err error
}

func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s:%d: %v: %q", e.Source, e.Line, e.Err, e.Content)
	}
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Content)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
