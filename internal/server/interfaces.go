package server

import "context"

// Server defines the lifecycle contract of the status server.
type Server interface {
	// Start binds the listener and serves requests in the background.
	Start() error

	// Shutdown gracefully stops the server, waiting for in-flight requests
	// until ctx ends.
	Shutdown(ctx context.Context) error
}
