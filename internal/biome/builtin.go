package biome

import (
	"skybound/server/internal/blueprint"
	"skybound/server/internal/powerup"
)

// Grassland is the easy biome: dense wide platforms, few hazards, and a
// probability table that favors jump boosts.
func Grassland() Definition {
	return Definition{
		Name: "grassland",
		Palette: blueprint.Palette{
			Sky:      blueprint.RGB{R: 135, G: 206, B: 235},
			Ground:   blueprint.RGB{R: 34, G: 139, B: 34},
			Platform: blueprint.RGB{R: 101, G: 67, B: 33},
			Hazard:   blueprint.RGB{R: 255, G: 0, B: 0},
		},
		Music: "assets/music/grassland.ogg",

		PlatformZones:       6,
		PlatformsPerZoneMin: 1,
		PlatformsPerZoneMax: 3,
		PlatformAttempts:    25,
		PlatformWidthMin:    100,
		PlatformWidthMax:    180,
		PlatformHeight:      20,
		PlatformBandMin:     100,
		PlatformBandMax:     240,
		ZoneEdgeMargin:      20,

		SpikeWidth:       40,
		SpikeHeight:      30,
		SpikeChance:      0.25,
		HazardZones:      12,
		DangerZones:      1,
		DangerZoneLength: 2,
		PlatformSpikes:   1,

		EnemyGroundChance:   0.15,
		EnemyPlatformChance: 0.20,

		PowerUpWeights: map[powerup.Type]float64{
			powerup.TypeSpeed: 0.30,
			powerup.TypeJump:  0.50,
			powerup.TypeLife:  0.20,
		},
		PowerUpDensity: 900,
	}.Normalized()
}

// Desert is the medium biome: sparser, higher platforms and more spikes,
// with extra lives weighted up to compensate.
func Desert() Definition {
	return Definition{
		Name: "desert",
		Palette: blueprint.Palette{
			Sky:      blueprint.RGB{R: 255, G: 218, B: 185},
			Ground:   blueprint.RGB{R: 210, G: 180, B: 140},
			Platform: blueprint.RGB{R: 139, G: 90, B: 43},
			Hazard:   blueprint.RGB{R: 255, G: 140, B: 0},
		},
		Music: "assets/music/desert.ogg",

		PlatformZones:       7,
		PlatformsPerZoneMin: 1,
		PlatformsPerZoneMax: 2,
		PlatformAttempts:    30,
		PlatformWidthMin:    90,
		PlatformWidthMax:    150,
		PlatformHeight:      20,
		PlatformBandMin:     120,
		PlatformBandMax:     300,
		ZoneEdgeMargin:      20,

		SpikeWidth:       40,
		SpikeHeight:      30,
		SpikeChance:      0.40,
		HazardZones:      14,
		DangerZones:      2,
		DangerZoneLength: 2,
		PlatformSpikes:   2,

		EnemyGroundChance:   0.25,
		EnemyPlatformChance: 0.30,

		PowerUpWeights: map[powerup.Type]float64{
			powerup.TypeSpeed: 0.30,
			powerup.TypeJump:  0.20,
			powerup.TypeLife:  0.50,
		},
		PowerUpDensity: 1000,
	}.Normalized()
}

// Glacial is the hard biome: narrow thin platforms, long spike runs, and
// aggressive enemy odds.
func Glacial() Definition {
	return Definition{
		Name: "glacial",
		Palette: blueprint.Palette{
			Sky:      blueprint.RGB{R: 176, G: 224, B: 230},
			Ground:   blueprint.RGB{R: 240, G: 248, B: 255},
			Platform: blueprint.RGB{R: 175, G: 238, B: 238},
			Hazard:   blueprint.RGB{R: 70, G: 130, B: 180},
		},
		Music: "assets/music/glacial.ogg",

		PlatformZones:       8,
		PlatformsPerZoneMin: 1,
		PlatformsPerZoneMax: 2,
		PlatformAttempts:    35,
		PlatformWidthMin:    80,
		PlatformWidthMax:    130,
		PlatformHeight:      15,
		PlatformBandMin:     140,
		PlatformBandMax:     340,
		ZoneEdgeMargin:      15,

		SpikeWidth:       35,
		SpikeHeight:      30,
		SpikeChance:      0.50,
		HazardZones:      16,
		DangerZones:      3,
		DangerZoneLength: 3,
		PlatformSpikes:   2,

		EnemyGroundChance:   0.30,
		EnemyPlatformChance: 0.35,

		PowerUpWeights: map[powerup.Type]float64{
			powerup.TypeSpeed: 0.25,
			powerup.TypeJump:  0.25,
			powerup.TypeLife:  0.50,
		},
		PowerUpDensity: 1100,
	}.Normalized()
}
