package config

import (
	"errors"
	"fmt"
	"io/fs"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

type snapshotBuilder struct {
	layers []Snapshot
	err    error
}

func newSnapshotBuilder() *snapshotBuilder {
	return &snapshotBuilder{
		layers: make([]Snapshot, 0, 2),
	}
}

func (b *snapshotBuilder) build() (Snapshot, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during capturing config snapshot: %w", b.err)
	}

	snap := make(Snapshot)
	for _, layer := range b.layers {
		if err := mergo.Merge(&snap, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging snapshot layers: %w", err)
		}
	}

	return snap, nil
}

func (b *snapshotBuilder) withEnvFile(path string) *snapshotBuilder {
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return b
	}
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%w %q: %w", ErrEnvFile, path, err))
		return b
	}

	b.layers = append(b.layers, Snapshot(values))
	return b
}

func (b *snapshotBuilder) withSnapshot(snap Snapshot) *snapshotBuilder {
	b.layers = append(b.layers, snap)
	return b
}
