// Package server runs the HTTP status endpoint of a supervisor run.
//
// The server binds its listener synchronously in Start, so address errors
// are reported to the caller, then serves in the background until Shutdown.
package server
