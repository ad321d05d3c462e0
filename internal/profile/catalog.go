package profile

import (
	_ "embed"
	"fmt"
	"maps"
	"slices"
	"sync"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-bot-launcher/internal/config"
)

//go:embed profiles.yaml
var catalogYAML []byte

const (
	ModeDryRun       = "dry-run"
	ModeMicroAmounts = "micro-amounts"
	ModeSimulation   = "simulation"
)

// Runner selects how a mode's unit is executed.
type Runner string

const (
	// RunnerProcess runs the bot as a child process.
	RunnerProcess Runner = "process"
	// RunnerInProcess runs the bot inside the supervisor for a bounded window.
	RunnerInProcess Runner = "in-process"
)

func (r Runner) valid() bool {
	return r == RunnerProcess || r == RunnerInProcess
}

// Profile is a named mode: its runner and the overlay applied to the base
// snapshot.
type Profile struct {
	Mode        string
	Runner      Runner
	Description string
	Overlay     config.Snapshot
}

type catalogFile struct {
	Modes map[string]struct {
		Runner      Runner            `yaml:"runner"`
		Description string            `yaml:"description"`
		Overlay     map[string]string `yaml:"overlay"`
	} `yaml:"modes"`
}

// Catalog is an immutable set of profiles that passed a SafetyPolicy.
type Catalog struct {
	profiles map[string]Profile
}

// ParseCatalog decodes a YAML catalog and checks every overlay against
// policy.
func ParseCatalog(data []byte, policy SafetyPolicy) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalog, err)
	}
	if len(file.Modes) == 0 {
		return nil, fmt.Errorf("%w: no modes defined", ErrCatalog)
	}

	c := &Catalog{profiles: make(map[string]Profile, len(file.Modes))}
	for mode, entry := range file.Modes {
		if !entry.Runner.valid() {
			return nil, fmt.Errorf("%w: mode %s: %w %q", ErrCatalog, mode, ErrUnknownRunner, entry.Runner)
		}

		overlay := config.Snapshot(entry.Overlay).Clone()
		if err := policy.Check(overlay); err != nil {
			return nil, fmt.Errorf("%w: mode %s: %w", ErrCatalog, mode, err)
		}

		c.profiles[mode] = Profile{
			Mode:        mode,
			Runner:      entry.Runner,
			Description: entry.Description,
			Overlay:     overlay,
		}
	}

	return c, nil
}

// Modes lists the catalog's mode names in sorted order.
func (c *Catalog) Modes() []string {
	return slices.Sorted(maps.Keys(c.profiles))
}

// Lookup returns the profile for mode. The returned overlay is a copy.
func (c *Catalog) Lookup(mode string) (Profile, error) {
	p, ok := c.profiles[mode]
	if !ok {
		return Profile{}, fmt.Errorf("%w %q (known: %v)", ErrUnknownMode, mode, c.Modes())
	}

	p.Overlay = p.Overlay.Clone()
	return p, nil
}

// Build applies the overlay of mode to a copy of base. Keys absent from the
// overlay keep their base values; base itself is never modified.
func (c *Catalog) Build(mode string, base config.Snapshot) (config.Snapshot, Profile, error) {
	p, err := c.Lookup(mode)
	if err != nil {
		return nil, Profile{}, err
	}

	out := base.Clone()
	if err = mergo.Merge(&out, p.Overlay, mergo.WithOverride); err != nil {
		return nil, Profile{}, fmt.Errorf("error applying %s overlay: %w", mode, err)
	}

	return out, p, nil
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return ParseCatalog(catalogYAML, DefaultPolicy())
})

// Default returns the embedded catalog, parsed and checked on first use.
func Default() (*Catalog, error) {
	return defaultCatalog()
}

// Build applies mode from the embedded catalog to base.
func Build(mode string, base config.Snapshot) (config.Snapshot, Profile, error) {
	c, err := Default()
	if err != nil {
		return nil, Profile{}, err
	}
	return c.Build(mode, base)
}

// Modes lists the embedded catalog's modes, or nil when it fails to load.
func Modes() []string {
	c, err := Default()
	if err != nil {
		return nil
	}
	return c.Modes()
}
