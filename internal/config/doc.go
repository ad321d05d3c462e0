// Package config provides configuration capture, schema declaration, and
// validation for the bot launcher.
//
// Configuration is captured once at startup into a [Snapshot] from the
// following sources (later sources override earlier keys):
//  1. Optional dotenv file (SUPERVISOR_ENV_FILE, default ".env")
//  2. Process environment
//
// The snapshot is never read from ambient state again: it is threaded
// explicitly through [Validate], the mode profile builder, and the
// supervisor. [Validate] checks a snapshot against a [Schema] and either
// returns a read-only [Validated] view or a [ValidationError] listing every
// violation found in a single pass.
//
// Launcher-level knobs (child command, simulation window, status address)
// are decoded from a snapshot by [ParseSettings].
package config
