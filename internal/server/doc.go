// Package server runs the HTTP transport of the user registry.
//
// It owns the listener lifecycle: startup, stop-signal handling and
// graceful shutdown bounded by the configured timeout.
package server
