package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"skybound/server/internal/biome"
	"skybound/server/internal/blueprint"
)

// Exports machine-readable schemas for the two JSON documents the project
// exchanges with the outside world: generated level blueprints and the biome
// override file. Editors and client-side validators consume these.
func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "", "directory to write the JSON schemas")
	flag.Parse()

	if outDir == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	targets := []struct {
		name   string
		schema *jsonschema.Schema
	}{
		{"blueprint.schema.json", buildBlueprintSchema()},
		{"biomes.schema.json", buildOverridesSchema()},
	}
	for _, target := range targets {
		if err := writeSchema(filepath.Join(outDir, target.name), target.schema); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", target.name, err)
			os.Exit(1)
		}
	}
}

func buildBlueprintSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(blueprint.World))
	schema.Title = "Skybound Level Blueprint"
	schema.Description = "Validates a generated level blueprint as served by /generate"
	return schema
}

func buildOverridesSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(biome.OverrideDocument))
	schema.Title = "Skybound Biome Overrides"
	schema.Description = "Validates designer-authored biome override files loaded at startup"
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
