package bot

import "context"

// RPC is the subset of the cluster JSON-RPC API the simulation uses.
type RPC interface {
	GetHealth(ctx context.Context) error
	GetSlot(ctx context.Context) (uint64, error)
}
