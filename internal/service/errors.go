package service

import "errors"

var (
	// ErrVersionIsNotSpecified is returned when the app version is empty.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrInvalidStyleRef is returned for an empty or malformed style ref.
	ErrInvalidStyleRef = errors.New("invalid style reference")

	// ErrInvalidStyleName is returned for a library name outside
	// [A-Za-z0-9][A-Za-z0-9_.-]*.
	ErrInvalidStyleName = errors.New("invalid style name")

	// ErrStyleLibraryUnavailable is returned for db: refs when no database
	// is configured.
	ErrStyleLibraryUnavailable = errors.New("style library is not configured")

	// ErrNoStylesGiven is returned by Compose and Apply without refs.
	ErrNoStylesGiven = errors.New("no styles given")
)
