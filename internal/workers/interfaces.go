// Package workers runs long-lived background tasks side by side: the HTTP
// server, the style file watcher, and the like.
package workers

import "context"

// Worker runs until ctx is done or it fails.
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// Func adapts a function to [Worker].
type Func func(ctx context.Context) error

func (f Func) Run(ctx context.Context) error {
	return f(ctx)
}
