// Package workers runs background jobs of the client next to the
// foreground operation.
//
// It defines the Worker interface and a Workers aggregate that runs several
// workers until their shared context is cancelled.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled. Implementations must not leave
// goroutines behind once Run returns.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
