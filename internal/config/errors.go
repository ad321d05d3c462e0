package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEnvFile indicates that the dotenv file exists but could not be read
	// or parsed.
	ErrEnvFile = errors.New("invalid env file")
	// ErrInvalidSettings indicates that launcher settings could not be
	// decoded from the snapshot (for example, a malformed duration).
	ErrInvalidSettings = errors.New("invalid launcher settings")
)

// ViolationKind classifies a single validation problem.
type ViolationKind string

const (
	// ViolationMissing marks a required key that is absent or empty.
	ViolationMissing ViolationKind = "missing"
	// ViolationFormat marks a value that cannot be parsed as its declared
	// kind (malformed account identifier, non-numeric number).
	ViolationFormat ViolationKind = "invalid_format"
	// ViolationRange marks a number outside its inclusive bounds.
	ViolationRange ViolationKind = "out_of_range"
	// ViolationEnum marks a value that is not one of the allowed values.
	ViolationEnum ViolationKind = "not_allowed"
)

// Violation describes one problem found for one key.
type Violation struct {
	Key    string
	Kind   ViolationKind
	Reason string
}

// String renders the violation as "KEY: reason".
func (v Violation) String() string {
	return v.Key + ": " + v.Reason
}

// ValidationError aggregates every violation found by [Validate], in schema
// declaration order. It is returned as data, never panicked.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "config validation failed"
	}

	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("config validation failed: %s", strings.Join(parts, "; "))
}

// Missing returns the names of the keys reported as missing.
func (e *ValidationError) Missing() []string {
	return e.keysOf(ViolationMissing)
}

// Of returns the violations of the given kind.
func (e *ValidationError) Of(kind ViolationKind) []Violation {
	var out []Violation
	for _, v := range e.Violations {
		if v.Kind == kind {
			out = append(out, v)
		}
	}
	return out
}

func (e *ValidationError) keysOf(kind ViolationKind) []string {
	var keys []string
	for _, v := range e.Of(kind) {
		keys = append(keys, v.Key)
	}
	return keys
}

func (e *ValidationError) add(key string, kind ViolationKind, reason string) {
	e.Violations = append(e.Violations, Violation{Key: key, Kind: kind, Reason: reason})
}

func (e *ValidationError) orNil() error {
	if e == nil || len(e.Violations) == 0 {
		return nil
	}
	return e
}
