package testutil

import (
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"syscall"
	"time"
)

// HelperEnv marks a re-executed test binary as a helper child.
const HelperEnv = "GO_WANT_HELPER_PROCESS"

// Exit codes of the "wait-signal" helper.
const (
	HelperInterruptCode = 0
	HelperTerminateCode = 3
)

// HelperCommand returns a command line that re-runs the current test binary
// as a helper child in the given mode. The child only acts as a helper when
// HelperEnv=1 is in its environment and the package's TestMain calls
// RunHelperProcess.
//
// Modes:
//
//	exit N        exit with code N
//	env KEY       print the value of KEY and exit 0
//	wait-signal   print "ready", then exit 0 on SIGINT or 3 on SIGTERM
//	kill-self     kill itself with SIGKILL
func HelperCommand(mode ...string) (string, []string) {
	return os.Args[0], append([]string{"-test.run=^$", "--"}, mode...)
}

// RunHelperProcess turns the current process into a helper child when
// HelperEnv is set. It never returns in that case.
func RunHelperProcess() {
	if os.Getenv(HelperEnv) != "1" {
		return
	}

	args := os.Args
	if i := slices.Index(args, "--"); i >= 0 {
		args = args[i+1:]
	}
	os.Exit(helperMain(args))
}

func helperMain(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "helper: no mode")
		return 2
	}

	switch args[0] {
	case "exit":
		code, err := strconv.Atoi(args[1])
		if err != nil {
			return 2
		}
		return code
	case "env":
		fmt.Println(os.Getenv(args[1]))
		return 0
	case "wait-signal":
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		fmt.Println("ready")
		if <-sigCh == syscall.SIGTERM {
			return HelperTerminateCode
		}
		return HelperInterruptCode
	case "kill-self":
		p, err := os.FindProcess(os.Getpid())
		if err == nil {
			_ = p.Kill()
		}
		time.Sleep(time.Minute)
		return 2
	default:
		fmt.Fprintf(os.Stderr, "helper: unknown mode %q\n", args[0])
		return 2
	}
}
