package server

import "context"

// Server defines the lifecycle contract of the mirror endpoint.
type Server interface {
	// Run serves requests until ctx is cancelled or the listener fails. On
	// cancellation it waits up to the shutdown timeout for in-flight
	// requests and returns nil.
	Run(ctx context.Context) error

	// Addr is the address the listener is bound to.
	Addr() string
}
