package unit

import (
	"errors"
	"fmt"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

var (
	ErrNotStarted     = errors.New("unit not started")
	ErrAlreadyStarted = errors.New("unit already started")
)

// Outcome is the terminal result of a unit run.
type Outcome struct {
	Code int
	Err  error
}

// LaunchError reports a unit that could not be started.
type LaunchError struct {
	Unit string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Unit, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// RuntimeError reports a unit that started but failed while running or
// stopping.
type RuntimeError struct {
	Unit string
	Err  error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Unit, e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
