// Package fear computes the ice fear global influence field: a scalar
// recomputed per location from the living Morkin/Luxor positions and the
// world's doom-darks-citadels score, driving every character's courage
// and every foul army's combat effectiveness. The package holds no cache
// of its own — the night pass stores the Compute result in
// worldmap.Location.IceFear for each tile where it builds a battle.
package fear

import (
	"midnight/coords"
	"midnight/entity"
	"midnight/enums"
	"midnight/worldmap"
)

// Inputs bundles the living-character state a fear computation needs.
type Inputs struct {
	MorkinAlive       bool
	MorkinPosition    coords.Position
	LuxorAlive        bool
	LuxorPosition     coords.Position
	DoomDarksCitadels int
}

// Compute returns the ice fear value for loc. If Morkin is alive and
// standing on loc, fear saturates toward the Tower of Despair distance
// from loc itself rather than Morkin's distance to it — the "ground
// zero" special case.
func Compute(m *worldmap.Map, loc *worldmap.Location, in Inputs) int {
	var fear int

	if in.MorkinAlive {
		locPos := coords.NewPosition(loc.X, loc.Y)
		if locPos.ManhattanDistance(in.MorkinPosition) == 0 {
			return 0x1FF - locPos.ManhattanDistance(worldmap.TowerOfDespair)*4
		}
		fear = in.MorkinPosition.ManhattanDistance(worldmap.TowerOfDespair)
	} else {
		fear = 0x7F
	}

	if in.LuxorAlive {
		fear += coords.NewPosition(loc.X, loc.Y).ManhattanDistance(in.LuxorPosition)
	} else {
		fear += 0x7F
	}

	fear += 0x30
	fear += in.DoomDarksCitadels

	return fear
}

// DoomDarksCitadels recomputes the world's doom-darks-citadels score,
// run at the top of every night: every foul static army — the guards
// holding conquered keeps and citadels, not the roaming doomguard —
// contributes 5 if it stands on a citadel, else 2.
func DoomDarksCitadels(w *entity.World, m *worldmap.Map) int {
	score := 0
	for _, id := range w.AllArmies() {
		unit, ok := w.Unit(id)
		if !ok || !unit.Race.IsFoul() {
			continue
		}
		if m.AtPos(unit.Position).Feature == enums.Citadel {
			score += 5
		} else {
			score += 2
		}
	}
	return score
}

// Describe maps an ice-fear scalar to its ladder description:
// Fear[7 - ice_fear/0x40], clamped.
func Describe(iceFear int) enums.Fear {
	return enums.FearFromIndex(7 - iceFear/0x40)
}
