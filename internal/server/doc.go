// Package server wires and runs the contact book HTTP server.
//
// It owns the server lifecycle: startup, signal handling, and graceful
// shutdown.
package server
