package midnight

// This file holds the query surface: side-effect-free lookups a renderer
// or test uses to read the current world state. No query here mutates
// entity or map state.

import (
	"github.com/bytearena/ecs"

	"midnight/enums"
	"midnight/fear"
	"midnight/worldmap"
)

// IceFearAt computes the ice fear scalar for loc on demand, from the
// living Morkin/Luxor positions and the world's cached
// doom-darks-citadels score.
func (w *World) IceFearAt(loc *worldmap.Location) int {
	return fear.Compute(w.Map, loc, w.fearInputs())
}

// FearDescriptionAt is IceFearAt's ladder reading.
func (w *World) FearDescriptionAt(loc *worldmap.Location) enums.Fear {
	return fear.Describe(w.IceFearAt(loc))
}

func (w *World) fearInputs() fear.Inputs {
	in := fear.Inputs{DoomDarksCitadels: w.DoomDarksCitadels}

	luxorID := w.Entities.CharacterByRosterID[0]
	if luxor, ok := w.Entities.Character(luxorID); ok && luxor.IsAlive() {
		if unit, ok := w.Entities.Unit(luxorID); ok {
			in.LuxorAlive = true
			in.LuxorPosition = unit.Position
		}
	}

	morkinID := w.Entities.CharacterByRosterID[1]
	if morkin, ok := w.Entities.Character(morkinID); ok && morkin.IsAlive() {
		if unit, ok := w.Entities.Unit(morkinID); ok {
			in.MorkinAlive = true
			in.MorkinPosition = unit.Position
		}
	}

	return in
}

// Controllable reports whether id is a character the player may
// currently issue day-phase commands to: Luxor, Morkin, or any recruited
// character once the Moon Ring is under free control.
func (w *World) Controllable(id ecs.EntityID) bool {
	char, ok := w.Entities.Character(id)
	if !ok {
		return false
	}
	if char.ID == 0 || char.ID == 1 {
		return true
	}
	return char.Recruited && w.MoonRingControlled
}

// GuidanceRumor names a random living character, the voice a character
// hears when seeking the guidance object. The object itself stays on its
// tile; only the rumor is produced.
func (w *World) GuidanceRumor() string {
	var living []string
	for _, id := range w.Entities.AllCharacters() {
		if char, ok := w.Entities.Character(id); ok && char.IsAlive() {
			living = append(living, char.Title)
		}
	}
	if len(living) == 0 {
		return ""
	}
	return living[w.Rng.Intn(len(living))]
}

// BattleDomainNames returns the distinct domain-flavored area names among
// this night's Battles, in the order first encountered.
func (w *World) BattleDomainNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, b := range w.Battles {
		if !b.Location.Domain {
			continue
		}
		name := b.Location.Area.String()
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
