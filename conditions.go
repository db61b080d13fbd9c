package midnight

import (
	"midnight/coords"
	"midnight/enums"
	"midnight/worldmap"
)

// narrativeNPCRosterIDs are Fawkrin, Lorgrim, and Farflame, the three
// characters whose tile, alongside Lake Mirrow itself, destroys the Ice
// Crown if Morkin stands there carrying it.
var narrativeNPCRosterIDs = [3]int{29, 30, 31}

// CheckSpecialConditions evaluates every end-of-game and world-flag
// rule, called at the top of every Night.
func (w *World) CheckSpecialConditions() {
	luxorID := w.Entities.CharacterByRosterID[0]
	morkinID := w.Entities.CharacterByRosterID[1]
	luxor, _ := w.Entities.Character(luxorID)
	morkin, _ := w.Entities.Character(morkinID)

	if luxor != nil && !luxor.IsAlive() && luxor.CarriedObject == enums.MoonRing {
		luxor.CarriedObject = enums.Nothing
		w.MoonRingControlled = false
	}

	if morkin != nil && morkin.IsAlive() {
		morkinUnit, _ := w.Entities.Unit(morkinID)

		if morkin.CarriedObject == enums.MoonRing {
			w.MoonRingControlled = true
		}

		if morkin.CarriedObject == enums.IceCrown && morkinUnit != nil {
			if morkinUnit.Position.IsEqual(worldmap.LakeMirrowLoc) || w.coLocatedWithNarrativeNPC(morkinUnit.Position) {
				w.IceCrownDestroyed = true
			}
		}
	}

	switch {
	case luxor != nil && morkin != nil && !luxor.IsAlive() && !morkin.IsAlive():
		w.declareGameOver(enums.LuxorMorkinDead)
	case morkin != nil && !morkin.IsAlive() && w.guardIsFoul(worldmap.Xajorkith):
		w.declareGameOver(enums.MorkinXajorkith)
	case w.guardIsFree(worldmap.Ushgarak):
		w.declareGameOver(enums.Ushgarak)
	case w.IceCrownDestroyed:
		w.declareGameOver(enums.IceCrownDestroyed)
	}
}

func (w *World) coLocatedWithNarrativeNPC(pos coords.Position) bool {
	for _, rosterID := range narrativeNPCRosterIDs {
		id, ok := w.Entities.CharacterByRosterID[rosterID]
		if !ok {
			continue
		}
		char, ok := w.Entities.Character(id)
		if !ok || !char.IsAlive() {
			continue
		}
		unit, ok := w.Entities.Unit(id)
		if ok && unit.Position.IsEqual(pos) {
			return true
		}
	}
	return false
}

func (w *World) guardIsFoul(pos coords.Position) bool {
	loc := w.Map.AtPos(pos)
	if !loc.HasGuard() {
		return false
	}
	unit, ok := w.Entities.Unit(loc.GuardID)
	return ok && unit.Race.IsFoul()
}

func (w *World) guardIsFree(pos coords.Position) bool {
	loc := w.Map.AtPos(pos)
	if !loc.HasGuard() {
		return false
	}
	unit, ok := w.Entities.Unit(loc.GuardID)
	return ok && !unit.Race.IsFoul()
}

func (w *World) declareGameOver(status enums.Status) {
	if w.GameOver {
		return
	}
	w.GameOver = true
	s := status
	w.Status = &s
}

// Winner returns the winning race once the game is over, or ok=false
// while play continues.
func (w *World) Winner() (enums.Race, bool) {
	if !w.GameOver || w.Status == nil {
		return 0, false
	}
	return w.Status.Winner(), true
}
