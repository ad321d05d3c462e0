package config

import (
	"maps"

	"github.com/caarlos0/env/v11"
)

// Snapshot maps configuration key names to raw string values as gathered
// from the environment at one point in time. Components treat snapshots as
// immutable inputs and return modified copies.
type Snapshot map[string]string

// Clone returns an independent copy of s. A nil snapshot clones to an empty
// one.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	maps.Copy(out, s)
	return out
}

// FromEnviron captures a snapshot from environ (as returned by os.Environ).
//
// If SUPERVISOR_ENV_FILE (default ".env") names an existing dotenv file, its
// values are layered underneath environ, so process variables always win.
// A missing file is not an error.
func FromEnviron(environ []string) (Snapshot, error) {
	base := Snapshot(env.ToMap(environ))

	envFile := base[settingsPrefix+envFileKey]
	if envFile == "" {
		envFile = defaultEnvFile
	}

	return newSnapshotBuilder().
		withEnvFile(envFile).
		withSnapshot(base).
		build()
}
