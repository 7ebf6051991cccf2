package powerup

import (
	"fmt"
	"sort"
)

// Type identifies a power-up kind referenced by biome probability tables.
type Type string

const (
	TypeSpeed Type = "speed"
	TypeJump  Type = "jump"
	TypeLife  Type = "life"
)

// Registry is the explicit set of power-up types known to the generator.
// Biome probability tables may only reference registered types; the check
// happens when a biome definition is validated, before any generation runs.
type Registry struct {
	types map[Type]struct{}
}

// NewRegistry builds an empty registry.
func NewRegistry() Registry {
	return Registry{types: make(map[Type]struct{})}
}

// Default returns a registry holding the three shipped power-up types.
func Default() Registry {
	reg := NewRegistry()
	reg.Register(TypeSpeed)
	reg.Register(TypeJump)
	reg.Register(TypeLife)
	return reg
}

// Register adds a type. Registering the same type twice is a no-op.
func (r Registry) Register(t Type) {
	r.types[t] = struct{}{}
}

// Contains reports whether the type has been registered.
func (r Registry) Contains(t Type) bool {
	_, ok := r.types[t]
	return ok
}

// Types returns every registered type in sorted order. Callers performing
// weighted draws iterate this slice so the draw order is deterministic.
func (r Registry) Types() []Type {
	out := make([]Type, 0, len(r.types))
	for t := range r.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of registered types.
func (r Registry) Len() int {
	return len(r.types)
}

// Validate confirms every type named by a probability table is registered.
func (r Registry) Validate(weights map[Type]float64) error {
	for t := range weights {
		if !r.Contains(t) {
			return fmt.Errorf("power-up type %q is not registered", t)
		}
	}
	return nil
}
