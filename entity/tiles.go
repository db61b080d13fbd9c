package entity

import (
	"github.com/bytearena/ecs"

	"midnight/worldmap"
)

// TileHoldsSoldiers reports whether loc should carry the ARMY feature: it
// holds at least one army, or at least one character whose owned warriors
// or riders are non-empty. A lone character with no soldiers leaves the
// tile reading as plains.
func (w *World) TileHoldsSoldiers(loc *worldmap.Location) bool {
	if loc.ArmyCount() > 0 {
		return true
	}
	for _, id := range loc.Characters {
		char, ok := w.Character(id)
		if !ok {
			continue
		}
		if warriors, ok := w.Army(char.Warriors); ok && warriors.HowMany > 0 {
			return true
		}
		if riders, ok := w.Army(char.Riders); ok && riders.HowMany > 0 {
			return true
		}
	}
	return false
}

// RemoveDrainedDoomguards sweeps loc for doomguards whose headcount has
// reached zero and removes each from the tile's army set and from the
// entity world. Character-owned armies and guards stay at zero instead —
// only doomguards die outright.
func (w *World) RemoveDrainedDoomguards(loc *worldmap.Location) {
	var drained []ecs.EntityID
	for _, id := range loc.Armies {
		if _, isDoom := w.Doomguard(id); !isDoom {
			continue
		}
		if army, ok := w.Army(id); ok && army.IsDrained() {
			drained = append(drained, id)
		}
	}
	for _, id := range drained {
		loc.RemoveArmy(id)
		if result := w.World.GetEntityByID(id); result != nil {
			w.World.DisposeEntity(result.Entity)
		}
	}
	loc.RefreshFeature(w.TileHoldsSoldiers(loc))
}
