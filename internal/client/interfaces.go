// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract for runnable command line
// applications.
type Client interface {
	// Run executes the subcommand named by args[0] and returns when it is
	// done.
	Run(ctx context.Context, args []string) error
}

// Clipboard receives text copied by stylectl.
type Clipboard interface {
	WriteAll(text string) error
}
