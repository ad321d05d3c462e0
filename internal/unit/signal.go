package unit

import (
	"os"
	"syscall"
)

// Signal is an external stop request forwarded to a unit.
type Signal int

const (
	Interrupt Signal = iota + 1
	Terminate
)

func (s Signal) String() string {
	switch s {
	case Interrupt:
		return "interrupt"
	case Terminate:
		return "terminate"
	default:
		return "unknown"
	}
}

// OS maps s to the operating system signal delivered to a child process.
func (s Signal) OS() os.Signal {
	if s == Terminate {
		return syscall.SIGTERM
	}
	return syscall.SIGINT
}

// FromOS maps SIGINT and SIGTERM to a Signal.
func FromOS(sig os.Signal) (Signal, bool) {
	switch sig {
	case syscall.SIGINT:
		return Interrupt, true
	case syscall.SIGTERM:
		return Terminate, true
	default:
		return 0, false
	}
}
