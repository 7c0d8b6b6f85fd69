// Package server holds the HTTP server configuration.
//
// The cmd package starts the Fiber application; this package only defines the
// listen port and the optional API key that guards the property and integrity routes.
package server
