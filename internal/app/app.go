// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"io"
	"os"

	"github.com/MKhiriev/go-bot-launcher/internal/config"
	"github.com/MKhiriev/go-bot-launcher/internal/logger"
	"github.com/MKhiriev/go-bot-launcher/internal/profile"
	"github.com/MKhiriev/go-bot-launcher/internal/report"
	"github.com/MKhiriev/go-bot-launcher/internal/server"
	"github.com/MKhiriev/go-bot-launcher/internal/supervisor"
	"github.com/MKhiriev/go-bot-launcher/internal/unit"
)

// App runs one launch mode.
type App struct {
	mode    string
	build   BuildInfo
	environ []string

	logger   *logger.Logger
	reporter *report.Reporter
	opts     []supervisor.Option
}

type Option func(*App)

// WithEnviron replaces os.Environ as the configuration source.
func WithEnviron(environ []string) Option {
	return func(a *App) {
		a.environ = environ
	}
}

// WithDiagnostics sends logs and reports to w instead of os.Stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(a *App) {
		a.logger = logger.New(w, a.mode)
		a.reporter = report.New(w)
	}
}

// WithSupervisorOptions appends options passed to the supervisor.
func WithSupervisorOptions(opts ...supervisor.Option) Option {
	return func(a *App) {
		a.opts = append(a.opts, opts...)
	}
}

func NewApp(mode string, build BuildInfo, opts ...Option) *App {
	a := &App{
		mode:    mode,
		build:   build,
		environ: os.Environ(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logger.NewLogger(mode)
	}
	if a.reporter == nil {
		a.reporter = report.New(os.Stderr)
	}
	return a
}

// Run supervises the mode and returns the process exit code.
func (a *App) Run(ctx context.Context) int {
	base, err := config.FromEnviron(a.environ)
	if err != nil {
		a.logger.Error().Err(err).Msg("error capturing environment")
		a.reporter.Fatal(a.mode, "environment", err)
		return unit.ExitFailure
	}

	opts := append([]supervisor.Option{
		supervisor.WithLogger(a.logger),
		supervisor.WithReporter(a.reporter),
		supervisor.WithStatusServer(server.StatusFactory(orNA(a.build.Version), a.logger)),
	}, a.opts...)

	sup := supervisor.New(a.mode, config.DefaultSchema(), NewUnitFactory(a.logger), opts...)
	return sup.Run(ctx, base)
}

// Check validates the environment without launching anything. With a mode
// the mode's overlay is applied first; without one the base environment is
// checked as is. It returns the process exit code.
func Check(mode string, environ []string, w io.Writer) int {
	rep := report.New(w)
	label := mode
	if label == "" {
		label = "environment"
	}

	snap, err := config.FromEnviron(environ)
	if err != nil {
		rep.Fatal(label, "environment", err)
		return unit.ExitFailure
	}

	if mode != "" {
		if snap, _, err = profile.Build(mode, snap); err != nil {
			rep.Fatal(label, "profile", err)
			return unit.ExitFailure
		}
	}

	schema := config.DefaultSchema()
	if _, err = config.Validate(schema, snap); err != nil {
		rep.Fatal(label, "validation", err)
		return unit.ExitFailure
	}

	rep.OK(label, len(schema.Keys()))
	return unit.ExitSuccess
}
