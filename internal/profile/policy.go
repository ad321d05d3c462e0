package profile

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/MKhiriev/go-bot-launcher/internal/config"
)

// SafetyPolicy describes which overlay values count as narrowing.
//
// A flag key may only be set to its safe value, a capped key only to a
// number within [0, cap], and a neutral key to anything. Any other key is
// rejected.
type SafetyPolicy struct {
	SafeFlags map[string]string
	Caps      map[string]float64
	Neutral   []string
}

// DefaultPolicy returns the policy the embedded catalog is checked against.
func DefaultPolicy() SafetyPolicy {
	return SafetyPolicy{
		SafeFlags: map[string]string{
			config.KeyDryRun:               config.FlagTrue,
			config.KeySimulationOnly:       config.FlagTrue,
			config.KeyEnableExchangeAccess: config.FlagFalse,
			config.KeyEnableBroadcast:      config.FlagFalse,
		},
		Caps: map[string]float64{
			config.KeyMaxPositionSize: 0.05,
			config.KeyMaxWallets:      3,
		},
		Neutral: []string{config.KeyLogLevel},
	}
}

// Check reports every overlay entry that does not narrow bot behaviour.
// Keys are checked in sorted order so the error text is stable.
func (p SafetyPolicy) Check(overlay config.Snapshot) error {
	for _, key := range slices.Sorted(maps.Keys(overlay)) {
		if err := p.checkKey(key, overlay[key]); err != nil {
			return err
		}
	}
	return nil
}

func (p SafetyPolicy) checkKey(key, value string) error {
	if safe, ok := p.SafeFlags[key]; ok {
		if value != safe {
			return fmt.Errorf("%w: %s=%q, only %q is allowed", ErrNotNarrowing, key, value, safe)
		}
		return nil
	}

	if limit, ok := p.Caps[key]; ok {
		n, err := config.ParseNumber(value)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrNotNarrowing, key, value)
		}
		if !(n >= 0 && n <= limit) {
			return fmt.Errorf("%w: %s=%s exceeds cap %s", ErrNotNarrowing, key, value,
				strconv.FormatFloat(limit, 'f', -1, 64))
		}
		return nil
	}

	if slices.Contains(p.Neutral, key) {
		return nil
	}

	return fmt.Errorf("%w: %s is not covered by the safety policy", ErrNotNarrowing, key)
}
