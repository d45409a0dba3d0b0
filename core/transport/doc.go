// Package transport builds the HTTP transports of the outbound clients.
//
// The remote API client and the storage client share one shape: connection
// setup, the TLS handshake and the wait for response headers are each bounded
// by the configured timeout, while the body read is bounded by the caller's
// context.
package transport
