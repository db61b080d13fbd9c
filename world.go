// Package midnight is the root orchestration layer: the World aggregate
// that owns the day counter, the doom-darks-citadels score, the
// end-of-game flags, and the night's built Battles, and drives the
// character/army/doomguard/battle phases the rest of the module only
// supplies the rules for.
package midnight

import (
	"github.com/bytearena/ecs"

	"midnight/combat"
	"midnight/entity"
	"midnight/enums"
	"midnight/randsrc"
	"midnight/worldmap"
)

// World is the fully wired simulation: entity state, the map, the
// injected random source, and the scalars and flags every night and dawn
// phase threads through.
type World struct {
	Entities *entity.World
	Map      *worldmap.Map
	Rng      randsrc.Source

	Day                int
	DoomDarksCitadels  int
	IceCrownDestroyed  bool
	MoonRingControlled bool

	GameOver bool
	Status   *enums.Status

	// Battles holds every Battle built by the most recently run night,
	// cleared at the start of the next one.
	Battles []*combat.Battle

	// Current is the character id the player's next day-phase command
	// applies to. Starts on Luxor.
	Current ecs.EntityID
}

// New constructs a freshly seeded World: the canonical 32 characters, 102
// guards, and 46 doomguards, at day 1, dawn.
func New(rng randsrc.Source) *World {
	m := worldmap.NewMap()
	entities := entity.NewWorld(m)
	return &World{
		Entities: entities,
		Map:      m,
		Rng:      rng,
		Day:      1,
		Current:  entities.CharacterByRosterID[0],
	}
}
