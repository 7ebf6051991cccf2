package main

import "skybound/server/internal/blueprint"

// clientMessage is the envelope for everything a preview client sends.
type clientMessage struct {
	Type   string  `json:"type"`
	Biome  string  `json:"biome,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Seed   string  `json:"seed,omitempty"`
}

type biomesMessage struct {
	Type   string   `json:"type"`
	Biomes []string `json:"biomes"`
}

type blueprintMessage struct {
	Type  string           `json:"type"`
	Seed  string           `json:"seed"`
	World *blueprint.World `json:"world"`
}

type errorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func newBiomesMessage(biomes []string) biomesMessage {
	return biomesMessage{Type: "biomes", Biomes: biomes}
}

func newBlueprintMessage(seed string, world *blueprint.World) blueprintMessage {
	return blueprintMessage{Type: "blueprint", Seed: seed, World: world}
}

func newErrorMessage(message string) errorMessage {
	return errorMessage{Type: "error", Message: message}
}
