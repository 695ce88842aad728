package server

import "context"

// Server defines the lifecycle contract of the transport server.
//
// RunServer blocks until the server stops. Shutdown drains in-flight
// requests until ctx expires.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT, then shuts
	// down gracefully. It returns early if the listener fails.
	RunServer() error
	// Shutdown gracefully stops the server.
	Shutdown(ctx context.Context) error
}
