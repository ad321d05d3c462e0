// Package app wires a launch mode end to end: it captures the environment,
// builds the supervisor with its unit factory and status endpoint, and
// returns the process exit code. Entry points under cmd/ only call into it.
package app
