// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "slices"

// KindType enumerates the value shapes a configuration key may declare.
type KindType int

const (
	// KindText accepts any non-empty string.
	KindText KindType = iota + 1

	// KindAccount accepts a base58-encoded 32-byte on-chain account or
	// program identifier.
	KindAccount

	// KindNumber accepts a floating-point number within [Min, Max].
	KindNumber

	// KindEnum accepts one of Allowed, compared exactly (case-sensitive).
	KindEnum
)

// String returns a short human-readable name of the kind.
func (k KindType) String() string {
	switch k {
	case KindText:
		return "text"
	case KindAccount:
		return "account"
	case KindNumber:
		return "number"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Key declares a single configuration key: its name, expected shape and
// whether it must be present. Keys are values; the constructors below return
// required keys and [Key.Optional] derives an optional copy.
type Key struct {
	Name     string
	Kind     KindType
	Required bool

	// Min and Max are the inclusive bounds of a KindNumber key.
	Min, Max float64

	// Allowed lists the accepted values of a KindEnum key.
	Allowed []string
}

// Text declares a required free-form text key.
func Text(name string) Key {
	return Key{Name: name, Kind: KindText, Required: true}
}

// Account declares a required on-chain account identifier key.
func Account(name string) Key {
	return Key{Name: name, Kind: KindAccount, Required: true}
}

// Number declares a required numeric key bounded by [min, max] inclusive.
func Number(name string, min, max float64) Key {
	return Key{Name: name, Kind: KindNumber, Required: true, Min: min, Max: max}
}

// Enum declares a required key restricted to the allowed values.
func Enum(name string, allowed ...string) Key {
	return Key{Name: name, Kind: KindEnum, Required: true, Allowed: slices.Clone(allowed)}
}

// Flag declares a required boolean feature flag ("true" or "false").
func Flag(name string) Key {
	return Enum(name, FlagTrue, FlagFalse)
}

// Optional returns a copy of k that may be absent from a snapshot.
// Present values are still checked against the declared kind.
func (k Key) Optional() Key {
	k.Required = false
	k.Allowed = slices.Clone(k.Allowed)
	return k
}

// Schema is an ordered, immutable set of keys. Validation reports
// violations in declaration order.
type Schema struct {
	keys []Key
}

// NewSchema builds a schema from keys. A later key with an already declared
// name replaces the earlier declaration in place.
func NewSchema(keys ...Key) Schema {
	s := Schema{keys: make([]Key, 0, len(keys))}
	for _, k := range keys {
		if i := s.index(k.Name); i >= 0 {
			s.keys[i] = k
			continue
		}
		s.keys = append(s.keys, k)
	}
	return s
}

// Keys returns a copy of the declared keys in order.
func (s Schema) Keys() []Key {
	return slices.Clone(s.keys)
}

// Lookup returns the key declared under name.
func (s Schema) Lookup(name string) (Key, bool) {
	if i := s.index(name); i >= 0 {
		return s.keys[i], true
	}
	return Key{}, false
}

func (s Schema) index(name string) int {
	return slices.IndexFunc(s.keys, func(k Key) bool { return k.Name == name })
}

// Flag values accepted by [Flag] keys.
const (
	FlagTrue  = "true"
	FlagFalse = "false"
)

// Names of the keys known to the default schema and to the mode profiles.
const (
	KeyRPCURL                = "RPC_URL"
	KeyJupiterProgramID      = "JUPITER_PROGRAM_ID"
	KeyWormholeCoreProgramID = "WORMHOLE_CORE_PROGRAM_ID"
	KeyWormholeTokenBridgeID = "WORMHOLE_TOKEN_BRIDGE_PROGRAM_ID"
	KeyUSDCMint              = "USDC_MINT"
	KeyWSOLMint              = "WSOL_MINT"
	KeySlippageBPS           = "SLIPPAGE_BPS"
	KeyMinBalance            = "MIN_BALANCE"
	KeyTargetAsset           = "TARGET_ASSET"
	KeyDryRun                = "DRY_RUN"
	KeySimulationOnly        = "SIMULATION_ONLY"
	KeyEnableExchangeAccess  = "ENABLE_EXCHANGE_ACCESS"
	KeyEnableBroadcast       = "ENABLE_BROADCAST"
	KeyMaxPositionSize       = "MAX_POSITION_SIZE"
	KeyMaxWallets            = "MAX_WALLETS"
	KeyLogLevel              = "LOG_LEVEL"

	// KeyRunID is not declared in the schema; the supervisor stamps it on
	// the effective snapshot so the child can correlate its logs.
	KeyRunID = "BOT_RUN_ID"
)

const (
	defaultTargetAsset        = "USDC"
	defaultSlippageBPSMin     = 1
	defaultSlippageBPSMax     = 10000
	defaultMinBalanceMin      = 0.001
	defaultMinBalanceMax      = 1.0
	defaultMaxPositionSizeMax = 1000
	defaultMaxWalletsMin      = 1
	defaultMaxWalletsMax      = 100
)

// DefaultSchema returns the schema the bridge bot is launched against.
func DefaultSchema() Schema {
	return NewSchema(
		Text(KeyRPCURL),
		Account(KeyJupiterProgramID),
		Account(KeyWormholeCoreProgramID),
		Account(KeyWormholeTokenBridgeID),
		Account(KeyUSDCMint),
		Account(KeyWSOLMint),
		Number(KeySlippageBPS, defaultSlippageBPSMin, defaultSlippageBPSMax),
		Number(KeyMinBalance, defaultMinBalanceMin, defaultMinBalanceMax),
		Enum(KeyTargetAsset, defaultTargetAsset),

		Flag(KeyDryRun).Optional(),
		Flag(KeySimulationOnly).Optional(),
		Flag(KeyEnableExchangeAccess).Optional(),
		Flag(KeyEnableBroadcast).Optional(),
		Number(KeyMaxPositionSize, 0, defaultMaxPositionSizeMax).Optional(),
		Number(KeyMaxWallets, defaultMaxWalletsMin, defaultMaxWalletsMax).Optional(),
		Enum(KeyLogLevel, "debug", "info", "warn", "error").Optional(),
	)
}
