package unit

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-bot-launcher/internal/config"
)

// signalExitBase is added to the signal number of a child killed by a
// signal, following the shell convention (SIGINT -> 130).
const signalExitBase = 128

// ProcessOption configures a ProcessUnit.
type ProcessOption func(*ProcessUnit)

// WithStdio replaces the inherited standard streams of the child.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) ProcessOption {
	return func(u *ProcessUnit) {
		u.stdin = stdin
		u.stdout = stdout
		u.stderr = stderr
	}
}

// ProcessUnit runs the bot as a child process.
//
// The child's environment is exactly cfg.Environ(); nothing is inherited
// from the supervisor's own environment. The child is not bound to the
// Start context: it only stops through Signal or by exiting.
type ProcessUnit struct {
	cfg     *config.Validated
	command string
	args    []string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	mu      sync.Mutex
	started bool
	cmd     *exec.Cmd

	done    chan struct{}
	outcome Outcome
}

// NewProcessUnit prepares command to run with cfg as its environment.
func NewProcessUnit(cfg *config.Validated, command string, args []string, opts ...ProcessOption) *ProcessUnit {
	u := &ProcessUnit{
		cfg:     cfg,
		command: command,
		args:    args,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *ProcessUnit) Start(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.started {
		return ErrAlreadyStarted
	}
	u.started = true

	if err := ctx.Err(); err != nil {
		return u.failLaunch(err)
	}

	cmd := exec.Command(u.command, u.args...)
	cmd.Env = u.cfg.Environ()
	cmd.Stdin = u.stdin
	cmd.Stdout = u.stdout
	cmd.Stderr = u.stderr

	if err := cmd.Start(); err != nil {
		return u.failLaunch(err)
	}
	u.cmd = cmd

	go u.wait()
	return nil
}

func (u *ProcessUnit) failLaunch(err error) error {
	launchErr := &LaunchError{Unit: u.command, Err: err}
	u.outcome = Outcome{Code: ExitFailure, Err: launchErr}
	close(u.done)
	return launchErr
}

func (u *ProcessUnit) wait() {
	err := u.cmd.Wait()
	u.outcome = exitOutcome(u.command, err)
	close(u.done)
}

func exitOutcome(name string, err error) Outcome {
	if err == nil {
		return Outcome{Code: ExitSuccess}
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return Outcome{Code: ExitFailure, Err: &RuntimeError{Unit: name, Err: err}}
	}

	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return Outcome{Code: signalExitBase + int(status.Signal())}
	}
	return Outcome{Code: exitErr.ExitCode()}
}

// Signal delivers s to the child unchanged. Signalling a child that has
// already exited is not an error.
func (u *ProcessUnit) Signal(s Signal) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.cmd == nil {
		return ErrNotStarted
	}

	err := u.cmd.Process.Signal(s.OS())
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}

// Wait returns the child's outcome once it has exited. It may be called any
// number of times.
func (u *ProcessUnit) Wait() Outcome {
	u.mu.Lock()
	started := u.started
	u.mu.Unlock()

	if !started {
		return Outcome{Code: ExitFailure, Err: ErrNotStarted}
	}

	<-u.done
	return u.outcome
}

// Pid returns the child's process id, or 0 before a successful Start.
func (u *ProcessUnit) Pid() int {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.cmd == nil || u.cmd.Process == nil {
		return 0
	}
	return u.cmd.Process.Pid
}
