package server

import "context"

// Server defines the lifecycle contract of the style server.
//
// RunServer blocks until ctx is cancelled, a stop signal arrives, or a
// worker fails, and returns once everything has shut down.
type Server interface {
	RunServer(ctx context.Context) error
}
