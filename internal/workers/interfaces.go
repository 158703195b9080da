// Package workers provides the background workers of the application and a
// Workers aggregate that starts and stops them together.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled. Workers must not hold key material;
// whatever they need is captured by the job they run.
type Worker interface {
	Run(ctx context.Context)
}
