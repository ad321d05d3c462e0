// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package supervisor

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-bot-launcher/internal/config"
	"github.com/MKhiriev/go-bot-launcher/internal/logger"
	"github.com/MKhiriev/go-bot-launcher/internal/profile"
	"github.com/MKhiriev/go-bot-launcher/internal/report"
	"github.com/MKhiriev/go-bot-launcher/internal/unit"
	"github.com/MKhiriev/go-bot-launcher/internal/utils"
)

const (
	statusShutdownTimeout = 5 * time.Second
	statusForceTimeout    = 100 * time.Millisecond
)

// Supervisor runs one mode: it builds and validates the configuration,
// launches the unit, forwards the first stop signal and reports the exit
// code. A Supervisor is meant for a single Run.
type Supervisor struct {
	mode    string
	schema  config.Schema
	factory UnitFactory

	catalog      *profile.Catalog
	signals      SignalSource
	logger       *logger.Logger
	reporter     *report.Reporter
	ids          utils.IDGenerator
	statusServer StatusServerFactory

	state atomic.Int32

	mu    sync.RWMutex
	runID string
}

func New(mode string, schema config.Schema, factory UnitFactory, opts ...Option) *Supervisor {
	s := &Supervisor{
		mode:     mode,
		schema:   schema,
		factory:  factory,
		signals:  OSSignals{},
		logger:   logger.Nop(),
		reporter: report.New(os.Stderr),
		ids:      utils.NewUUIDGenerator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current lifecycle state. Safe for concurrent use.
func (s *Supervisor) State() State {
	return State(s.state.Load())
}

// Status returns the mode, state and run ID. Safe for concurrent use.
func (s *Supervisor) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		Mode:  s.mode,
		State: s.State().String(),
		RunID: s.runID,
	}
}

func (s *Supervisor) setState(st State) {
	s.state.Store(int32(st))
	s.logger.Debug().Str("state", st.String()).Msg("state changed")
}

// Run executes the mode against base and returns the process exit code:
// 0 on clean completion, 1 on a configuration or launch failure, otherwise
// the unit's own exit code. Cancelling ctx is handled like a terminate
// signal. Stop requests are acted on while the unit is still starting.
func (s *Supervisor) Run(ctx context.Context, base config.Snapshot) int {
	runID := s.ids.Generate()
	s.mu.Lock()
	s.runID = runID
	s.mu.Unlock()

	s.logger = s.logger.GetChildLogger()
	s.logger.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("mode", s.mode).Str("run_id", runID)
	})
	ctx = s.logger.WithContext(utils.WithRunID(ctx, runID))

	s.setState(StateValidating)

	cfg, p, settings, ok := s.prepare(base, runID)
	if !ok {
		s.setState(StateInvalid)
		return unit.ExitFailure
	}

	s.setState(StateLaunching)

	signals, unsubscribe := s.signals.Subscribe()
	defer unsubscribe()

	u, err := s.factory(p, cfg, settings)
	if err == nil && u == nil {
		err = errNoUnit
	}
	if err != nil {
		return s.launchFailed(err)
	}

	// The unit lives as long as the run; startCtx is only cancelled early
	// by a stop request that arrives while the unit is starting.
	startCtx, cancelStart := context.WithCancel(ctx)
	defer cancelStart()

	pending, err := s.launch(startCtx, cancelStart, u, signals)
	if err != nil {
		if pending == nil || !errors.Is(err, startCtx.Err()) {
			return s.launchFailed(err)
		}
		s.setState(StateSignalReceived)
		s.logger.Info().Stringer("signal", *pending).Msg("launch cancelled by stop signal")
		s.setState(StateStopping)
		outcome := u.Wait()
		s.logOutcome(outcome)
		s.setState(StateTerminated)
		return outcome.Code
	}

	s.setState(StateRunning)
	s.logger.Info().Str("runner", string(p.Runner)).Msg("bot running")

	stopStatus := s.startStatusServer(settings.StatusAddress)

	outcome, forced := s.supervise(ctx, u, signals, pending)

	if stopStatus != nil {
		stopStatus(forced)
	}
	s.setState(StateTerminated)
	return outcome.Code
}

func (s *Supervisor) launchFailed(err error) int {
	s.logger.Error().Err(err).Msg("launch failed")
	s.reporter.Fatal(s.mode, "launch", err)
	s.setState(StateLaunchFailed)
	return unit.ExitFailure
}

// launch starts u while still listening for stop requests. The first request
// cancels the start context and is returned so it can be forwarded once the
// unit is up; later ones are ignored.
func (s *Supervisor) launch(ctx context.Context, cancel context.CancelFunc, u unit.Unit, signals <-chan unit.Signal) (*unit.Signal, error) {
	started := make(chan error, 1)
	go func() {
		started <- u.Start(ctx)
	}()

	var pending *unit.Signal
	request := func(sig unit.Signal) {
		if pending != nil {
			return
		}
		pending = &sig
		s.logger.Info().Stringer("signal", sig).Msg("stop signal during launch")
		cancel()
	}

	ctxDone := ctx.Done()
	for {
		select {
		case err := <-started:
			return pending, err

		case sig, ok := <-signals:
			if !ok {
				signals = nil
				continue
			}
			request(sig)

		case <-ctxDone:
			ctxDone = nil
			request(unit.Terminate)
		}
	}
}

// prepare builds the effective configuration for the mode. Failures are
// reported to the operator.
func (s *Supervisor) prepare(base config.Snapshot, runID string) (*config.Validated, profile.Profile, config.Settings, bool) {
	catalog := s.catalog
	if catalog == nil {
		var err error
		if catalog, err = profile.Default(); err != nil {
			s.logger.Error().Err(err).Msg("profile catalog unavailable")
			s.reporter.Fatal(s.mode, "profile", err)
			return nil, profile.Profile{}, config.Settings{}, false
		}
	}

	snap, p, err := catalog.Build(s.mode, base)
	if err != nil {
		s.logger.Error().Err(err).Msg("unknown mode")
		s.reporter.Fatal(s.mode, "profile", err)
		return nil, profile.Profile{}, config.Settings{}, false
	}
	snap[config.KeyRunID] = runID

	cfg, err := config.Validate(s.schema, snap)
	if err != nil {
		s.logger.Error().Err(err).Msg("configuration rejected")
		s.reporter.Fatal(s.mode, "validation", err)
		return nil, profile.Profile{}, config.Settings{}, false
	}

	if level, ok := cfg.Value(config.KeyLogLevel); ok {
		if err = logger.SetLevel(level); err != nil {
			s.logger.Warn().Err(err).Msg("log level not applied")
		}
	}

	settings, err := config.ParseSettings(snap)
	if err != nil {
		s.logger.Error().Err(err).Msg("supervisor settings rejected")
		s.reporter.Fatal(s.mode, "settings", err)
		return nil, profile.Profile{}, config.Settings{}, false
	}

	return cfg, p, settings, true
}

// supervise waits for the unit's outcome. The first stop request, or
// pending when one arrived during launch, is forwarded to the unit; later
// ones are ignored. forced reports whether the run ended through a forwarded
// stop request.
func (s *Supervisor) supervise(ctx context.Context, u unit.Unit, signals <-chan unit.Signal, pending *unit.Signal) (outcome unit.Outcome, forced bool) {
	outcomes := make(chan unit.Outcome, 1)
	go func() {
		outcomes <- u.Wait()
	}()

	forwarded := false
	if pending != nil {
		forwarded = true
		s.forward(u, *pending)
	}
	ctxDone := ctx.Done()

	for {
		select {
		case outcome := <-outcomes:
			if !forwarded {
				s.setState(StateCompleted)
			}
			s.logOutcome(outcome)
			return outcome, forwarded

		case sig, ok := <-signals:
			if !ok {
				signals = nil
				continue
			}
			if forwarded {
				continue
			}
			forwarded = true
			s.forward(u, sig)

		case <-ctxDone:
			ctxDone = nil
			if forwarded {
				continue
			}
			forwarded = true
			s.forward(u, unit.Terminate)
		}
	}
}

func (s *Supervisor) forward(u unit.Unit, sig unit.Signal) {
	s.setState(StateSignalReceived)
	s.logger.Info().Stringer("signal", sig).Msg("forwarding stop signal")

	if err := u.Signal(sig); err != nil {
		s.logger.Warn().Err(err).Stringer("signal", sig).Msg("signal not delivered")
	}
	s.setState(StateStopping)
}

func (s *Supervisor) logOutcome(outcome unit.Outcome) {
	event := s.logger.Info()
	if outcome.Err != nil {
		event = s.logger.Error().Err(outcome.Err)
	}
	event.Int("exit_code", outcome.Code).Msg("bot finished")
}

// startStatusServer starts the status endpoint when configured and returns
// its shutdown function. A forced shutdown gives in-flight requests only
// statusForceTimeout, so a stop request is not held up by status clients.
func (s *Supervisor) startStatusServer(addr string) func(forced bool) {
	if s.statusServer == nil || addr == "" {
		return nil
	}

	srv := s.statusServer(addr, s)
	if err := srv.Start(); err != nil {
		s.logger.Warn().Err(err).Str("address", addr).Msg("status endpoint unavailable")
		return nil
	}
	s.logger.Info().Str("address", addr).Msg("status endpoint listening")

	return func(forced bool) {
		timeout := statusShutdownTimeout
		if forced {
			timeout = statusForceTimeout
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			s.logger.Warn().Err(err).Bool("forced", forced).Msg("status endpoint shutdown")
		}
	}
}
