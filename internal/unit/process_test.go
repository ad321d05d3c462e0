package unit_test

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bot-launcher/internal/config"
	"github.com/MKhiriev/go-bot-launcher/internal/testutil"
	"github.com/MKhiriev/go-bot-launcher/internal/unit"
)

func helperConfig(t *testing.T) *config.Validated {
	t.Helper()
	snap := testutil.With(testutil.ValidSnapshot(), testutil.HelperEnv, "1")
	cfg, err := config.Validate(config.DefaultSchema(), snap)
	require.NoError(t, err)
	return cfg
}

func helperUnit(t *testing.T, stdout io.Writer, mode ...string) *unit.ProcessUnit {
	t.Helper()
	command, args := testutil.HelperCommand(mode...)
	return unit.NewProcessUnit(helperConfig(t), command, args, unit.WithStdio(nil, stdout, os.Stderr))
}

// readyPipe returns a pipe whose write end is handed to the child; the test
// blocks on the read end until the child reports it is ready.
func readyPipe(t *testing.T) (*bufio.Reader, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})
	return bufio.NewReader(r), w
}

func skipWithoutSignals(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("signals cannot be delivered to child processes on windows")
	}
}

func TestProcessUnit_ExitCodePassThrough(t *testing.T) {
	for _, code := range []string{"0", "1", "7", "42"} {
		t.Run(code, func(t *testing.T) {
			u := helperUnit(t, nil, "exit", code)
			require.NoError(t, u.Start(context.Background()))
			assert.NotZero(t, u.Pid())

			out := u.Wait()
			assert.NoError(t, out.Err)
			assert.Equal(t, code, strconv.Itoa(out.Code))
		})
	}
}

func TestProcessUnit_WaitIsIdempotent(t *testing.T) {
	u := helperUnit(t, nil, "exit", "5")
	require.NoError(t, u.Start(context.Background()))

	first := u.Wait()
	second := u.Wait()

	assert.Equal(t, 5, first.Code)
	assert.Equal(t, first, second)
}

// TestProcessUnit_EnvironmentIsSnapshot verifies that the child sees the
// validated configuration and nothing from the supervisor's environment.
func TestProcessUnit_EnvironmentIsSnapshot(t *testing.T) {
	t.Setenv("LAUNCHER_LEAK_CHECK", "leaked")

	tests := []struct {
		key  string
		want string
	}{
		{key: config.KeyRPCURL, want: "http://127.0.0.1:8899\n"},
		{key: config.KeyUSDCMint, want: testutil.USDCMint + "\n"},
		{key: "LAUNCHER_LEAK_CHECK", want: "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			r, w, err := os.Pipe()
			require.NoError(t, err)
			defer r.Close()

			u := helperUnit(t, w, "env", tt.key)
			require.NoError(t, u.Start(context.Background()))
			require.NoError(t, w.Close())

			var buf bytes.Buffer
			_, err = buf.ReadFrom(r)
			require.NoError(t, err)

			assert.Equal(t, 0, u.Wait().Code)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestProcessUnit_LaunchFailure(t *testing.T) {
	u := unit.NewProcessUnit(helperConfig(t), "/nonexistent/bridge-bot", nil)

	err := u.Start(context.Background())

	var launchErr *unit.LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.Equal(t, "/nonexistent/bridge-bot", launchErr.Unit)

	out := u.Wait()
	assert.Equal(t, unit.ExitFailure, out.Code)
	assert.ErrorAs(t, out.Err, &launchErr)
	assert.ErrorIs(t, u.Signal(unit.Interrupt), unit.ErrNotStarted)
}

func TestProcessUnit_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	u := helperUnit(t, nil, "exit", "0")
	err := u.Start(ctx)

	var launchErr *unit.LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, unit.ExitFailure, u.Wait().Code)
}

func TestProcessUnit_StartTwice(t *testing.T) {
	u := helperUnit(t, nil, "exit", "0")
	require.NoError(t, u.Start(context.Background()))

	assert.ErrorIs(t, u.Start(context.Background()), unit.ErrAlreadyStarted)
	assert.Equal(t, 0, u.Wait().Code)
}

func TestProcessUnit_NotStarted(t *testing.T) {
	u := helperUnit(t, nil, "exit", "0")

	assert.ErrorIs(t, u.Signal(unit.Interrupt), unit.ErrNotStarted)
	out := u.Wait()
	assert.Equal(t, unit.ExitFailure, out.Code)
	assert.ErrorIs(t, out.Err, unit.ErrNotStarted)
	assert.Zero(t, u.Pid())
}

func TestProcessUnit_ForwardsSignal(t *testing.T) {
	skipWithoutSignals(t)

	tests := []struct {
		signal unit.Signal
		want   int
	}{
		{signal: unit.Interrupt, want: testutil.HelperInterruptCode},
		{signal: unit.Terminate, want: testutil.HelperTerminateCode},
	}

	for _, tt := range tests {
		t.Run(tt.signal.String(), func(t *testing.T) {
			ready, w := readyPipe(t)
			u := helperUnit(t, w, "wait-signal")
			require.NoError(t, u.Start(context.Background()))

			line, err := ready.ReadString('\n')
			require.NoError(t, err)
			require.Equal(t, "ready\n", line)

			require.NoError(t, u.Signal(tt.signal))

			out := u.Wait()
			assert.NoError(t, out.Err)
			assert.Equal(t, tt.want, out.Code)
		})
	}
}

func TestProcessUnit_SignalAfterExit(t *testing.T) {
	skipWithoutSignals(t)

	u := helperUnit(t, nil, "exit", "0")
	require.NoError(t, u.Start(context.Background()))
	require.Equal(t, 0, u.Wait().Code)

	assert.NoError(t, u.Signal(unit.Interrupt))
}

func TestProcessUnit_KilledBySignal(t *testing.T) {
	skipWithoutSignals(t)

	u := helperUnit(t, nil, "kill-self")
	require.NoError(t, u.Start(context.Background()))

	out := u.Wait()
	assert.NoError(t, out.Err)
	assert.Equal(t, 128+9, out.Code)
}
