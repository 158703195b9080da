// Package server runs the mirror endpoint.
//
// It owns the listener and the lifecycle of the HTTP server: startup,
// shutdown when the context is cancelled, and draining of in-flight uploads.
package server
