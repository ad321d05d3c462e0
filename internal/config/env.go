// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const settingsPrefix = "SUPERVISOR_"

// parseEnv populates cfg from snap using the caarlos0/env library. Struct
// fields are mapped via their `env` tags, prefixed with SUPERVISOR_.
//
// The process environment is never consulted: snap is the only source.
func parseEnv(cfg any, snap Snapshot) error {
	if snap == nil {
		// env falls back to os.Environ for a nil map.
		snap = Snapshot{}
	}

	err := env.ParseWithOptions(cfg, env.Options{
		Environment: snap,
		Prefix:      settingsPrefix,
	})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
