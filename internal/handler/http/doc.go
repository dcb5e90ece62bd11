// Package http implements the HTTP transport layer of the contact book.
//
// It wires the chi router, renders the server-side HTML pages, and carries
// the browser session and flash notices in cookies. Tracing, access logging,
// panic recovery, response compression and session loading are handled by
// middleware before requests reach the service layer.
package http
