// Package server runs the application's HTTP transport.
//
// It owns the http.Server lifecycle: startup, timeouts taken from the
// configuration, and graceful shutdown once the run context is cancelled.
package server
