// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package unit

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/unit_mock.go -package=mock

// Unit is a runnable bot instance.
type Unit interface {
	// Start launches the unit. It fails with *LaunchError when the bot cannot
	// be started; Wait then reports the same failure.
	Start(ctx context.Context) error
	// Signal forwards s to the running unit.
	Signal(s Signal) error
	// Wait blocks until the unit's single Outcome is available.
	Wait() Outcome
}

// Bot is the in-process bot contract.
type Bot interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}
