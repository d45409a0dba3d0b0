// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber app; this package only defines the listen
// port and the API key checked by the auth middleware.
package server
