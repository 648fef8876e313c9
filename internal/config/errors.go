package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid.
var (
	// ErrInvalidAppConfigs indicates an unparseable log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStyleConfigs indicates an unknown policy name, a negative
	// debounce, or watching with no style files.
	ErrInvalidStyleConfigs = errors.New("invalid style configuration")
	// ErrInvalidStorageConfigs indicates an unsupported driver or an empty
	// DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// negative request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates a missing remote address or request
	// timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
