// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally. Failures are logged by the worker itself.
type Worker interface {
	Run(ctx context.Context)
}
