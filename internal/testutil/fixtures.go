// Package testutil holds shared fixtures for package tests.
package testutil

import "github.com/MKhiriev/go-bot-launcher/internal/config"

// Well-known mainnet identifiers, all valid 32-byte base58 accounts.
const (
	JupiterProgramID    = "JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4"
	WormholeCoreID      = "worm2ZoG2kUd4vFXhvjh93UUH596ayRfgQ2MgjNMTth"
	WormholeTokenBridge = "wormDTUJ6AWPNvk59vGQbDvGJmqbDTdgWgAqcLBCgUb"
	USDCMint            = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	WSOLMint            = "So11111111111111111111111111111111111111112"
	SystemProgram       = "11111111111111111111111111111111"
)

// ValidSnapshot returns a snapshot that passes config.DefaultSchema. Each
// call returns a fresh map.
func ValidSnapshot() config.Snapshot {
	return config.Snapshot{
		config.KeyRPCURL:                "http://127.0.0.1:8899",
		config.KeyJupiterProgramID:      JupiterProgramID,
		config.KeyWormholeCoreProgramID: WormholeCoreID,
		config.KeyWormholeTokenBridgeID: WormholeTokenBridge,
		config.KeyUSDCMint:              USDCMint,
		config.KeyWSOLMint:              WSOLMint,
		config.KeySlippageBPS:           "50",
		config.KeyMinBalance:            "0.01",
		config.KeyTargetAsset:           "USDC",
	}
}

// With returns a copy of snap with the given key/value pairs applied.
// An empty value removes the key.
func With(snap config.Snapshot, kv ...string) config.Snapshot {
	out := snap.Clone()
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			delete(out, kv[i])
			continue
		}
		out[kv[i]] = kv[i+1]
	}
	return out
}
