package app

import (
	"fmt"

	"github.com/MKhiriev/go-bot-launcher/internal/bot"
	"github.com/MKhiriev/go-bot-launcher/internal/config"
	"github.com/MKhiriev/go-bot-launcher/internal/logger"
	"github.com/MKhiriev/go-bot-launcher/internal/profile"
	"github.com/MKhiriev/go-bot-launcher/internal/supervisor"
	"github.com/MKhiriev/go-bot-launcher/internal/unit"
)

// NewUnitFactory maps a profile's runner to a unit: the bot binary from
// SUPERVISOR_BOT_COMMAND for process modes, the simulation bot bounded by
// SUPERVISOR_SIMULATION_WINDOW for in-process modes.
func NewUnitFactory(log *logger.Logger, opts ...unit.ProcessOption) supervisor.UnitFactory {
	return func(p profile.Profile, cfg *config.Validated, s config.Settings) (unit.Unit, error) {
		switch p.Runner {
		case profile.RunnerProcess:
			return unit.NewProcessUnit(cfg, s.BotCommand, s.BotArgs, opts...), nil
		case profile.RunnerInProcess:
			b, err := bot.NewSimulationBot(cfg, log.GetChildLogger())
			if err != nil {
				return nil, fmt.Errorf("error creating simulation bot: %w", err)
			}
			return unit.NewInProcessUnit(b, s.SimulationWindow), nil
		default:
			return nil, fmt.Errorf("%w %q", profile.ErrUnknownRunner, p.Runner)
		}
	}
}
