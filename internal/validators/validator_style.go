package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-plot-style/models"
)

const (
	FieldName = "name"
	FieldBody = "body"
)

const (
	// MaxStyleNameLength bounds library names.
	MaxStyleNameLength = 255

	// MaxStyleBodySize bounds style documents, in bytes.
	MaxStyleBodySize = 1 << 20
)

var styleNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// ValidStyleName reports whether name can be used in the style library.
func ValidStyleName(name string) bool {
	return len(name) <= MaxStyleNameLength && styleNamePattern.MatchString(name)
}

type StyleValidator struct {
}

func NewStyleValidator() Validator {
	return &StyleValidator{}
}

// Validate accepts a [models.Style] (or pointer) and checks the named
// fields, all of them by default. A bare string is checked as a name.
func (v *StyleValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return validateName(value)

	case models.Style:
		return v.validateStyle(value, fields...)
	case *models.Style:
		if value == nil {
			return ErrNilStyle
		}
		return v.validateStyle(*value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *StyleValidator) validateStyle(style models.Style, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldBody}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldName:
			err = validateName(style.Name)
		case FieldBody:
			err = validateBody(style.Body)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func validateName(name string) error {
	if !ValidStyleName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidStyleName, name)
	}
	return nil
}

func validateBody(body string) error {
	if len(body) > MaxStyleBodySize {
		return fmt.Errorf("%w: %d bytes", ErrBodyTooLarge, len(body))
	}
	return nil
}
