package client

import "errors"

var (
	// ErrUsage is returned for unknown subcommands and bad arguments.
	ErrUsage = errors.New("usage error")

	// ErrCheckFailed is returned by check when any file is invalid.
	ErrCheckFailed = errors.New("style check failed")

	// ErrNoRemote is returned by remote subcommands without a server.
	ErrNoRemote = errors.New("no style server configured")
)

var errClipboardUnsupported = errors.New("clipboard is not supported on this system")
