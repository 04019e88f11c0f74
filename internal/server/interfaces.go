package server

import "context"

// Server defines the lifecycle contract for transport servers managed by
// this package.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT and then
	// shuts down gracefully.
	RunServer()

	// Run serves requests until ctx is done.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
