package supervisor

import (
	"context"

	"github.com/MKhiriev/go-bot-launcher/internal/config"
	"github.com/MKhiriev/go-bot-launcher/internal/logger"
	"github.com/MKhiriev/go-bot-launcher/internal/profile"
	"github.com/MKhiriev/go-bot-launcher/internal/report"
	"github.com/MKhiriev/go-bot-launcher/internal/unit"
	"github.com/MKhiriev/go-bot-launcher/internal/utils"
)

// UnitFactory builds the unit for a validated configuration. It is only
// ever called with a configuration that passed validation.
type UnitFactory func(p profile.Profile, cfg *config.Validated, settings config.Settings) (unit.Unit, error)

// StatusServer is the read-only status endpoint run alongside the bot.
type StatusServer interface {
	Start() error
	Shutdown(ctx context.Context) error
}

// StatusServerFactory builds a StatusServer listening on addr that reports
// the given supervisor's status.
type StatusServerFactory func(addr string, sup *Supervisor) StatusServer

type Option func(*Supervisor)

func WithSignals(src SignalSource) Option {
	return func(s *Supervisor) {
		s.signals = src
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(s *Supervisor) {
		s.logger = l
	}
}

// WithReporter sets where operator-facing failure summaries are written.
func WithReporter(r *report.Reporter) Option {
	return func(s *Supervisor) {
		s.reporter = r
	}
}

func WithIDGenerator(g utils.IDGenerator) Option {
	return func(s *Supervisor) {
		s.ids = g
	}
}

// WithCatalog replaces the embedded profile catalog.
func WithCatalog(c *profile.Catalog) Option {
	return func(s *Supervisor) {
		s.catalog = c
	}
}

// WithStatusServer enables the status endpoint when SUPERVISOR_STATUS_ADDRESS
// is set.
func WithStatusServer(f StatusServerFactory) Option {
	return func(s *Supervisor) {
		s.statusServer = f
	}
}
