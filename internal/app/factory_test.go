package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bot-launcher/internal/config"
	"github.com/MKhiriev/go-bot-launcher/internal/logger"
	"github.com/MKhiriev/go-bot-launcher/internal/profile"
	"github.com/MKhiriev/go-bot-launcher/internal/testutil"
	"github.com/MKhiriev/go-bot-launcher/internal/unit"
)

func validated(t *testing.T) *config.Validated {
	t.Helper()
	cfg, err := config.Validate(config.DefaultSchema(), testutil.ValidSnapshot())
	require.NoError(t, err)
	return cfg
}

func TestNewUnitFactory(t *testing.T) {
	factory := NewUnitFactory(logger.Nop())
	settings := config.Settings{BotCommand: "bridge-bot", SimulationWindow: time.Second}

	t.Run("process", func(t *testing.T) {
		u, err := factory(profile.Profile{Runner: profile.RunnerProcess}, validated(t), settings)

		require.NoError(t, err)
		assert.IsType(t, &unit.ProcessUnit{}, u)
	})

	t.Run("in-process", func(t *testing.T) {
		u, err := factory(profile.Profile{Runner: profile.RunnerInProcess}, validated(t), settings)

		require.NoError(t, err)
		assert.IsType(t, &unit.InProcessUnit{}, u)
	})

	t.Run("unknown runner", func(t *testing.T) {
		u, err := factory(profile.Profile{Runner: "docker"}, validated(t), settings)

		assert.Nil(t, u)
		assert.ErrorIs(t, err, profile.ErrUnknownRunner)
	})
}
