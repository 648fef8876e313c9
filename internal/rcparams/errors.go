package rcparams

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKey is returned by [Params.Set] for a key the renderer does
	// not recognize, and by [Apply] under [UnknownKeysError].
	ErrUnknownKey = errors.New("unknown style setting")

	// ErrOutOfRange is returned for numbers outside the allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrNotAllowed is returned for tokens outside an enumeration.
	ErrNotAllowed = errors.New("value not allowed")

	// ErrInvalidCycler is returned for a malformed cycler expression.
	ErrInvalidCycler = errors.New("invalid cycler expression")

	// ErrInvalidColor is returned for an unrecognized color specification.
	ErrInvalidColor = errors.New("invalid color")

	// ErrUnknownKeyPolicy is returned by [ParseUnknownKeyPolicy].
	ErrUnknownKeyPolicy = errors.New("unknown key policy")
)

// TypeCoercionError reports a value that cannot be interpreted as the type
// its key expects.
type TypeCoercionError struct {
	Key   string
	Value string
	Kind  Kind
	Err   error
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("cannot interpret %s: %q as %s: %v", e.Key, e.Value, e.Kind, e.Err)
}

func (e *TypeCoercionError) Unwrap() error {
	return e.Err
}

// UnknownKeyWarning names a setting the target did not recognize. It is
// reported, not fatal, unless the policy is [UnknownKeysError].
type UnknownKeyWarning struct {
	Key  string `json:"key"`
	Line int    `json:"line,omitempty"`
}

func (w UnknownKeyWarning) Error() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s: %s (line %d)", ErrUnknownKey, w.Key, w.Line)
	}
	return fmt.Sprintf("%s: %s", ErrUnknownKey, w.Key)
}

func (w UnknownKeyWarning) Unwrap() error {
	return ErrUnknownKey
}
