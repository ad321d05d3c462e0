package bot

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bot-launcher/internal/config"
	"github.com/MKhiriev/go-bot-launcher/internal/logger"
	"github.com/MKhiriev/go-bot-launcher/internal/testutil"
)

// spyRPC counts calls and returns canned answers.
type spyRPC struct {
	healthErr error
	slotErr   error
	health    atomic.Int64
	slots     atomic.Int64
}

func (s *spyRPC) GetHealth(context.Context) error {
	s.health.Add(1)
	return s.healthErr
}

func (s *spyRPC) GetSlot(context.Context) (uint64, error) {
	n := s.slots.Add(1)
	return uint64(n), s.slotErr
}

func validConfig(t *testing.T, kv ...string) *config.Validated {
	t.Helper()
	cfg, err := config.Validate(config.DefaultSchema(), testutil.With(testutil.ValidSnapshot(), kv...))
	require.NoError(t, err)
	return cfg
}

func newTestBot(t *testing.T, rpc RPC) *SimulationBot {
	t.Helper()
	b, err := NewSimulationBot(validConfig(t), logger.Nop(), WithRPC(rpc), WithCycleInterval(5*time.Millisecond))
	require.NoError(t, err)
	return b
}

func TestSimulationBot_RunsCycles(t *testing.T) {
	spy := &spyRPC{}
	b := newTestBot(t, spy)

	require.NoError(t, b.Start(context.Background()))
	time.Sleep(40 * time.Millisecond)
	require.NoError(t, b.Stop(context.Background()))

	assert.Equal(t, int64(1), spy.health.Load())
	assert.GreaterOrEqual(t, b.Cycles(), int64(2))
}

func TestSimulationBot_StopEndsLoop(t *testing.T) {
	spy := &spyRPC{}
	b := newTestBot(t, spy)

	require.NoError(t, b.Start(context.Background()))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, b.Stop(context.Background()))

	after := spy.slots.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, spy.slots.Load(), "no calls after Stop")
}

func TestSimulationBot_StartFailsWhenUnhealthy(t *testing.T) {
	spy := &spyRPC{healthErr: ErrUnhealthy}
	b := newTestBot(t, spy)

	err := b.Start(context.Background())

	assert.ErrorIs(t, err, ErrUnhealthy)
	time.Sleep(15 * time.Millisecond)
	assert.Zero(t, spy.slots.Load())
	assert.NoError(t, b.Stop(context.Background()))
}

func TestSimulationBot_SlotErrorsSkipCycles(t *testing.T) {
	spy := &spyRPC{slotErr: errors.New("timeout")}
	b := newTestBot(t, spy)

	require.NoError(t, b.Start(context.Background()))
	time.Sleep(30 * time.Millisecond)
	require.NoError(t, b.Stop(context.Background()))

	assert.Positive(t, spy.slots.Load())
	assert.Zero(t, b.Cycles())
}

func TestSimulationBot_StartTwice(t *testing.T) {
	b := newTestBot(t, &spyRPC{})

	require.NoError(t, b.Start(context.Background()))
	defer b.Stop(context.Background())

	assert.ErrorIs(t, b.Start(context.Background()), ErrAlreadyRunning)
}

func TestSimulationBot_StopWithoutStart(t *testing.T) {
	b := newTestBot(t, &spyRPC{})
	assert.NotPanics(t, func() {
		assert.NoError(t, b.Stop(context.Background()))
	})
}

func TestSimulationBot_ParentContextEndsLoop(t *testing.T) {
	spy := &spyRPC{}
	b := newTestBot(t, spy)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, b.Start(ctx))
	cancel()

	require.NoError(t, b.Stop(context.Background()))
}

func TestNewSimulationBot_UsesRPCURL(t *testing.T) {
	srv := newRPCServer(t, func(method string) (int, string) {
		if method == "getHealth" {
			return http.StatusOK, `{"jsonrpc":"2.0","id":1,"result":"ok"}`
		}
		return http.StatusOK, `{"jsonrpc":"2.0","id":2,"result":100}`
	})

	b, err := NewSimulationBot(validConfig(t, config.KeyRPCURL, srv.URL), logger.Nop(),
		WithCycleInterval(5*time.Millisecond))
	require.NoError(t, err)

	require.NoError(t, b.Start(context.Background()))
	time.Sleep(30 * time.Millisecond)
	require.NoError(t, b.Stop(context.Background()))

	assert.Positive(t, b.Cycles())
	assert.Equal(t, "USDC", b.target)
	assert.Equal(t, float64(50), b.slippage)
}

func TestNewSimulationBot_InvalidRPCURL(t *testing.T) {
	_, err := NewSimulationBot(validConfig(t, config.KeyRPCURL, "ws://node:8900"), logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidEndpoint)
}
