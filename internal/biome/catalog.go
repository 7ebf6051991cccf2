package biome

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"skybound/server/internal/powerup"
)

// OverrideDocument is the designer-authored file format for biome tuning.
// Each entry fully replaces (or introduces) the definition of that name.
type OverrideDocument struct {
	Biomes []Definition `json:"biomes"`
}

// Catalog resolves biome definitions by name. It is constructed with the
// built-in biomes and can absorb designer override files; every definition
// it hands out has already been normalized and validated.
type Catalog struct {
	reg  powerup.Registry
	defs map[string]Definition
}

// NewCatalog builds a catalog holding the built-in biomes, validated against
// the registry. A validation failure here is a programming/content error.
func NewCatalog(reg powerup.Registry) (*Catalog, error) {
	c := &Catalog{reg: reg, defs: make(map[string]Definition)}
	for _, def := range []Definition{Grassland(), Desert(), Glacial()} {
		if err := c.put(def); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) put(def Definition) error {
	normalized := def.Normalized()
	if err := normalized.Validate(c.reg); err != nil {
		return err
	}
	c.defs[normalized.Name] = normalized
	return nil
}

// Lookup returns the definition registered under name.
func (c *Catalog) Lookup(name string) (Definition, error) {
	def, ok := c.defs[name]
	if !ok {
		return Definition{}, fmt.Errorf("biome: unknown biome %q", name)
	}
	return def, nil
}

// Names returns the registered biome names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.defs))
	for name := range c.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadOverrides reads a designer override file and installs its definitions.
// Any invalid entry aborts the whole load so a bad file never half-applies.
func (c *Catalog) LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("biome: read overrides: %w", err)
	}
	var doc OverrideDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("biome: parse overrides %s: %w", path, err)
	}
	staged := make([]Definition, 0, len(doc.Biomes))
	for _, def := range doc.Biomes {
		normalized := def.Normalized()
		if err := normalized.Validate(c.reg); err != nil {
			return fmt.Errorf("biome: overrides %s: %w", path, err)
		}
		staged = append(staged, normalized)
	}
	for _, def := range staged {
		c.defs[def.Name] = def
	}
	return nil
}
