// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bot

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-bot-launcher/internal/config"
	"github.com/MKhiriev/go-bot-launcher/internal/logger"
)

const defaultCycleInterval = time.Second

// SimulationOption configures a SimulationBot.
type SimulationOption func(*SimulationBot)

// WithRPC replaces the JSON-RPC client built from RPC_URL.
func WithRPC(rpc RPC) SimulationOption {
	return func(b *SimulationBot) {
		b.rpc = rpc
	}
}

// WithCycleInterval sets how often a simulated cycle runs.
func WithCycleInterval(d time.Duration) SimulationOption {
	return func(b *SimulationBot) {
		if d > 0 {
			b.interval = d
		}
	}
}

// SimulationBot is the in-process bot. It never signs or broadcasts: each
// cycle reads the current slot and logs the route it would quote.
type SimulationBot struct {
	rpc      RPC
	interval time.Duration
	logger   *logger.Logger

	target   string
	slippage float64

	cycles atomic.Int64

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSimulationBot builds a bot from the validated configuration.
func NewSimulationBot(cfg *config.Validated, log *logger.Logger, opts ...SimulationOption) (*SimulationBot, error) {
	b := &SimulationBot{
		interval: defaultCycleInterval,
		logger:   log,
	}
	b.target, _ = cfg.Value(config.KeyTargetAsset)
	b.slippage, _ = cfg.Number(config.KeySlippageBPS)

	for _, opt := range opts {
		opt(b)
	}

	if b.rpc == nil {
		endpoint, _ := cfg.Value(config.KeyRPCURL)
		rpc, err := NewRPCClient(endpoint)
		if err != nil {
			return nil, err
		}
		b.rpc = rpc
	}

	return b, nil
}

// Start checks node health and launches the cycle loop. The loop ends when
// ctx is cancelled or Stop is called.
func (b *SimulationBot) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cancel != nil {
		return ErrAlreadyRunning
	}

	if err := b.rpc.GetHealth(ctx); err != nil {
		return fmt.Errorf("simulation health check: %w", err)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.wg.Add(1)

	go func() {
		defer b.wg.Done()
		t := time.NewTicker(b.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				b.cycle(loopCtx)
			}
		}
	}()

	b.logger.Info().
		Str("target", b.target).
		Float64("slippage_bps", b.slippage).
		Dur("interval", b.interval).
		Msg("simulation started")
	return nil
}

func (b *SimulationBot) cycle(ctx context.Context) {
	slot, err := b.rpc.GetSlot(ctx)
	if err != nil {
		if ctx.Err() == nil {
			b.logger.Warn().Err(err).Msg("simulated cycle skipped")
		}
		return
	}

	n := b.cycles.Add(1)
	b.logger.Debug().
		Int64("cycle", n).
		Uint64("slot", slot).
		Str("target", b.target).
		Msg("simulated cycle")
}

// Stop cancels the cycle loop and waits for it to exit, or for ctx to end.
// Stopping a bot that is not running is a no-op.
func (b *SimulationBot) Stop(ctx context.Context) error {
	b.mu.Lock()
	cancel := b.cancel
	b.cancel = nil
	b.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		b.logger.Info().Int64("cycles", b.cycles.Load()).Msg("simulation stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for simulation loop: %w", ctx.Err())
	}
}

// Cycles reports how many simulated cycles completed.
func (b *SimulationBot) Cycles() int64 {
	return b.cycles.Load()
}
