// Package server runs the HTTP transport of the application.
//
// It owns the listener lifecycle: startup, signal handling and a bounded
// graceful shutdown of in-flight requests.
package server
