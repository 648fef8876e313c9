package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidStyleName = errors.New("invalid style name")
	ErrBodyTooLarge     = errors.New("style body too large")
	ErrNilStyle         = errors.New("style is nil")
)
