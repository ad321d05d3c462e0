// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	envFileKey     = "ENV_FILE"
	defaultEnvFile = ".env"
)

// Settings holds launcher-level configuration. It is decoded from a snapshot
// rather than from the process environment, so mode overlays may adjust it
// (for example, the simulation window).
//
// Struct tags:
//   - env        : variable name, prefixed with SUPERVISOR_ (caarlos0/env).
//   - envDefault : value used when the variable is absent.
type Settings struct {
	// BotCommand is the executable started for out-of-process modes.
	// Env: SUPERVISOR_BOT_COMMAND
	BotCommand string `env:"BOT_COMMAND" envDefault:"bridge-bot"`

	// BotArgs are passed to BotCommand, separated by spaces.
	// Env: SUPERVISOR_BOT_ARGS
	BotArgs []string `env:"BOT_ARGS" envSeparator:" "`

	// SimulationWindow bounds the run of an in-process unit, measured from
	// its successful start (e.g. "30s", "5m").
	// Env: SUPERVISOR_SIMULATION_WINDOW
	SimulationWindow time.Duration `env:"SIMULATION_WINDOW" envDefault:"30s"`

	// StatusAddress is the "host:port" of the read-only status endpoint.
	// Empty disables the endpoint.
	// Env: SUPERVISOR_STATUS_ADDRESS
	StatusAddress string `env:"STATUS_ADDRESS"`

	// EnvFile is the dotenv file layered underneath the process environment.
	// Env: SUPERVISOR_ENV_FILE
	EnvFile string `env:"ENV_FILE" envDefault:".env"`
}

// ParseSettings decodes [Settings] from snap and checks their invariants.
func ParseSettings(snap Snapshot) (Settings, error) {
	var s Settings
	if err := parseEnv(&s, snap); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	return s, s.validate()
}

func (s Settings) validate() error {
	if strings.TrimSpace(s.BotCommand) == "" {
		return fmt.Errorf("%w: bot command is empty", ErrInvalidSettings)
	}
	if s.SimulationWindow <= 0 {
		return fmt.Errorf("%w: simulation window must be positive, got %s", ErrInvalidSettings, s.SimulationWindow)
	}
	return nil
}
