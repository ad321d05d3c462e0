package config

import (
	"sort"
)

type value struct {
	raw     string
	number  float64
	account [AccountSize]byte
}

// Validated is the read-only result of a successful [Validate] call.
// Typed getters expose schema keys; [Validated.Environ] flattens the whole
// effective snapshot back into KEY=value pairs for a child process.
type Validated struct {
	snapshot Snapshot
	values   map[string]value
}

// Has reports whether a schema key was present and valid.
func (v *Validated) Has(name string) bool {
	_, ok := v.values[name]
	return ok
}

// Value returns the raw value of a schema key.
func (v *Validated) Value(name string) (string, bool) {
	val, ok := v.values[name]
	return val.raw, ok
}

// Number returns the parsed value of a number key.
func (v *Validated) Number(name string) (float64, bool) {
	val, ok := v.values[name]
	return val.number, ok
}

// Account returns the decoded bytes of an account key.
func (v *Validated) Account(name string) ([AccountSize]byte, bool) {
	val, ok := v.values[name]
	return val.account, ok
}

// Bool returns the value of a flag key. Absent flags report ok == false.
func (v *Validated) Bool(name string) (bool, bool) {
	val, ok := v.values[name]
	if !ok {
		return false, false
	}
	return val.raw == FlagTrue, true
}

// Lookup returns any snapshot value, declared in the schema or not.
func (v *Validated) Lookup(name string) (string, bool) {
	raw, ok := v.snapshot[name]
	return raw, ok
}

// Snapshot returns a copy of the effective snapshot the config was built from.
func (v *Validated) Snapshot() Snapshot {
	return v.snapshot.Clone()
}

// Environ returns the effective snapshot as sorted KEY=value pairs.
func (v *Validated) Environ() []string {
	keys := make([]string, 0, len(v.snapshot))
	for k := range v.snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	environ := make([]string, 0, len(keys))
	for _, k := range keys {
		environ = append(environ, k+"="+v.snapshot[k])
	}
	return environ
}
