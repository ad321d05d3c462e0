package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bot-launcher/internal/app"
	"github.com/MKhiriev/go-bot-launcher/internal/config"
	"github.com/MKhiriev/go-bot-launcher/internal/profile"
	"github.com/MKhiriev/go-bot-launcher/internal/supervisor"
	"github.com/MKhiriev/go-bot-launcher/internal/testutil"
)

func TestMain(m *testing.M) {
	testutil.RunHelperProcess()
	os.Exit(m.Run())
}

// environ flattens snap into KEY=VALUE pairs and pins the dotenv path to a
// file that does not exist.
func environ(t *testing.T, snap config.Snapshot, extra ...string) []string {
	t.Helper()
	out := []string{"SUPERVISOR_ENV_FILE=" + filepath.Join(t.TempDir(), "absent.env")}
	for k, v := range snap {
		out = append(out, k+"="+v)
	}
	return append(out, extra...)
}

func helperEnviron(t *testing.T, mode ...string) []string {
	t.Helper()
	cmd, args := testutil.HelperCommand(mode...)
	return environ(t, testutil.ValidSnapshot(),
		testutil.HelperEnv+"=1",
		"SUPERVISOR_BOT_COMMAND="+cmd,
		"SUPERVISOR_BOT_ARGS="+strings.Join(args, " "),
	)
}

func newApp(t *testing.T, mode string, env []string, diag *bytes.Buffer) *app.App {
	t.Helper()
	return app.NewApp(mode, app.BuildInfo{Version: "v0.0.1-test"},
		app.WithEnviron(env),
		app.WithDiagnostics(diag),
		app.WithSupervisorOptions(supervisor.WithSignals(make(supervisor.SignalChan))),
	)
}

func TestApp_Run_PassesChildExitCode(t *testing.T) {
	for _, code := range []int{0, 1, 42} {
		t.Run(strconv.Itoa(code), func(t *testing.T) {
			diag := &bytes.Buffer{}
			a := newApp(t, profile.ModeDryRun, helperEnviron(t, "exit", strconv.Itoa(code)), diag)

			assert.Equal(t, code, a.Run(context.Background()))
		})
	}
}

func TestApp_Run_InvalidConfigDoesNotLaunch(t *testing.T) {
	// Arrange: RPC_URL отсутствует, бот стартовать не должен.
	env := helperEnviron(t, "exit", "42")
	env = append(env, config.KeyRPCURL+"=")
	diag := &bytes.Buffer{}

	// Act
	code := newApp(t, profile.ModeMicroAmounts, env, diag).Run(context.Background())

	// Assert
	assert.Equal(t, 1, code)
	assert.Contains(t, diag.String(), config.KeyRPCURL)
	assert.Contains(t, diag.String(), "configuration invalid")
}

func TestApp_Run_UnknownMode(t *testing.T) {
	diag := &bytes.Buffer{}

	code := newApp(t, "live", helperEnviron(t, "exit", "0"), diag).Run(context.Background())

	assert.Equal(t, 1, code)
	assert.Contains(t, diag.String(), "live")
}

func TestApp_Run_BrokenEnvFile(t *testing.T) {
	diag := &bytes.Buffer{}
	env := []string{"SUPERVISOR_ENV_FILE=" + t.TempDir()}

	code := newApp(t, profile.ModeDryRun, env, diag).Run(context.Background())

	assert.Equal(t, 1, code)
	assert.Contains(t, diag.String(), "environment failed")
}

func TestApp_Run_MissingBotCommand(t *testing.T) {
	diag := &bytes.Buffer{}
	env := environ(t, testutil.ValidSnapshot(),
		"SUPERVISOR_BOT_COMMAND="+filepath.Join(t.TempDir(), "no-such-bot"))

	code := newApp(t, profile.ModeDryRun, env, diag).Run(context.Background())

	assert.Equal(t, 1, code)
	assert.Contains(t, diag.String(), "launch failed")
}

func TestCheck_ValidBase(t *testing.T) {
	var out bytes.Buffer

	code := app.Check("", environ(t, testutil.ValidSnapshot()), &out)

	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "environment: configuration valid")
}

func TestCheck_ValidMode(t *testing.T) {
	var out bytes.Buffer

	code := app.Check(profile.ModeMicroAmounts, environ(t, testutil.ValidSnapshot()), &out)

	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), profile.ModeMicroAmounts+": configuration valid")
}

func TestCheck_ListsEveryMissingKey(t *testing.T) {
	var out bytes.Buffer
	snap := testutil.With(testutil.ValidSnapshot(),
		config.KeyRPCURL, "",
		config.KeyUSDCMint, "",
	)

	code := app.Check("", environ(t, snap), &out)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), config.KeyRPCURL)
	assert.Contains(t, out.String(), config.KeyUSDCMint)
}

func TestCheck_UnknownMode(t *testing.T) {
	var out bytes.Buffer

	code := app.Check("live", environ(t, testutil.ValidSnapshot()), &out)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "profile failed")
}

func TestBuildInfo_Print(t *testing.T) {
	var out bytes.Buffer

	app.BuildInfo{Version: "v1.2.3"}.Print(&out)

	assert.Equal(t, "Build version: v1.2.3\nBuild date: N/A\nBuild commit: N/A\n", out.String())
}
