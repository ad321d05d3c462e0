// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/mr-tron/base58"
)

// AccountSize is the decoded length of an on-chain account identifier.
const AccountSize = 32

// decimalPattern accepts plain decimal notation with an optional exponent.
// Hex floats, digit separators, surrounding space, NaN and Inf are rejected.
var decimalPattern = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// Validate checks snap against schema without mutating either.
//
// Every required key that is absent (or set to an empty string) is reported
// as [ViolationMissing]; every present key is checked against its kind.
// Validation never stops at the first problem: the returned
// *[ValidationError] lists all of them in schema order.
//
// On success the returned [Validated] holds the parsed value of every present
// schema key and the raw value of every other snapshot key.
func Validate(schema Schema, snap Snapshot) (*Validated, error) {
	issues := &ValidationError{}
	values := make(map[string]value, len(schema.keys))

	for _, key := range schema.keys {
		raw, ok := snap[key.Name]
		if !ok || raw == "" {
			if key.Required {
				issues.add(key.Name, ViolationMissing, "required key is not set")
			}
			continue
		}

		v, violation := parseValue(key, raw)
		if violation != nil {
			issues.Violations = append(issues.Violations, *violation)
			continue
		}
		values[key.Name] = v
	}

	if err := issues.orNil(); err != nil {
		return nil, err
	}

	return &Validated{snapshot: snap.Clone(), values: values}, nil
}

func parseValue(key Key, raw string) (value, *Violation) {
	switch key.Kind {
	case KindText:
		return value{raw: raw}, nil

	case KindAccount:
		account, err := ParseAccount(raw)
		if err != nil {
			return value{}, &Violation{Key: key.Name, Kind: ViolationFormat, Reason: err.Error()}
		}
		return value{raw: raw, account: account}, nil

	case KindNumber:
		n, err := ParseNumber(raw)
		if err != nil {
			return value{}, &Violation{
				Key:    key.Name,
				Kind:   ViolationFormat,
				Reason: fmt.Sprintf("%q is not a number", raw),
			}
		}
		if !(n >= key.Min && n <= key.Max) {
			return value{}, &Violation{
				Key:    key.Name,
				Kind:   ViolationRange,
				Reason: fmt.Sprintf("%s is out of range [%s, %s]", raw, formatBound(key.Min), formatBound(key.Max)),
			}
		}
		return value{raw: raw, number: n}, nil

	case KindEnum:
		if !slices.Contains(key.Allowed, raw) {
			return value{}, &Violation{
				Key:    key.Name,
				Kind:   ViolationEnum,
				Reason: fmt.Sprintf("%q is not one of [%s]", raw, strings.Join(key.Allowed, ", ")),
			}
		}
		return value{raw: raw}, nil

	default:
		return value{}, &Violation{
			Key:    key.Name,
			Kind:   ViolationFormat,
			Reason: fmt.Sprintf("unsupported key kind %s", key.Kind),
		}
	}
}

// ParseAccount decodes a base58 account identifier and checks that it is
// exactly [AccountSize] bytes long. Decoder errors are returned verbatim.
func ParseAccount(s string) ([AccountSize]byte, error) {
	var account [AccountSize]byte

	decoded, err := base58.Decode(s)
	if err != nil {
		return account, err
	}
	if len(decoded) != AccountSize {
		return account, fmt.Errorf("decoded account is %d bytes, want %d", len(decoded), AccountSize)
	}

	copy(account[:], decoded)
	return account, nil
}

// ParseNumber parses s as a plain decimal number. The child receives the
// raw value, so only notation every consumer reads the same way is accepted.
func ParseNumber(s string) (float64, error) {
	if !decimalPattern.MatchString(s) {
		return 0, fmt.Errorf("%q is not a decimal number", s)
	}
	return strconv.ParseFloat(s, 64)
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
