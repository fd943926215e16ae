// Package httpserver wraps net/http's server with graceful shutdown and
// health probe helpers.
//
// Run blocks until the context is cancelled, an interrupt arrives, or the
// listener fails; in the first two cases outstanding requests get the
// configured shutdown window to complete.
package httpserver
