package midnight

import (
	"github.com/bytearena/ecs"

	"midnight/combat"
	"midnight/entity"
	"midnight/enums"
	"midnight/fear"
	"midnight/patrol"
	"midnight/worldmap"
)

// Night runs one full night turn: check end-of-game conditions first;
// if the game isn't over, advance the day, recompute doom_darks_citadels,
// and run the night activity.
func (w *World) Night() {
	w.CheckSpecialConditions()
	if w.GameOver {
		return
	}
	w.Day++
	w.DoomDarksCitadels = fear.DoomDarksCitadels(w.Entities, w.Map)
	w.nightActivity()
}

// nightActivity is the seven-step night sequence.
func (w *World) nightActivity() {
	// 1. Clear last night's battle map.
	w.Battles = nil
	built := make(map[[2]int]bool)

	// 2. Every character recovers energy from unused daylight hours, its
	// own armies recovering alongside it with their riders/warriors bonus;
	// every alive, non-hidden character marks its tile special and clears
	// its per-night scratch counters.
	for _, id := range w.Entities.AllCharacters() {
		char, _ := w.Entities.Character(id)
		unit, _ := w.Entities.Unit(id)
		unit.AddEnergy(char.Time / 2)
		for _, armyID := range []ecs.EntityID{char.Warriors, char.Riders} {
			if armyUnit, ok := w.Entities.Unit(armyID); ok {
				if army, ok := w.Entities.Army(armyID); ok {
					entity.IncrementArmyEnergy(armyUnit, army, char.Time/2)
				}
			}
		}
	}
	for _, id := range w.Entities.AllCharacters() {
		char, _ := w.Entities.Character(id)
		if !char.IsAlive() || char.Hidden {
			continue
		}
		unit, _ := w.Entities.Unit(id)
		loc := w.Map.AtPos(unit.Position)
		loc.Special = true

		unit.EnemyKilled = 0
		char.BattleLocation = nil
		for _, armyID := range []ecs.EntityID{char.Warriors, char.Riders} {
			if army, ok := w.Entities.Army(armyID); ok {
				army.Casualties = 0
			}
			if armyUnit, ok := w.Entities.Unit(armyID); ok {
				armyUnit.EnemyKilled = 0
			}
		}
	}

	// 3. Every non-foul guard (the "static army" that never moves) marks
	// its tile special too.
	w.forEachNonFoulGuard(func(loc *worldmap.Location) { loc.Special = true })

	// 4. Every doomguard spends its night's move budget.
	patroller := patrol.New(w.Entities, w.Map, w.Rng)
	for _, id := range w.Entities.AllDoomguards() {
		patroller.Run(id)
	}

	// 5. Clear each character's special flag; build a Battle for any tile
	// that now holds an army or a foul guard and has none yet.
	for _, id := range w.Entities.AllCharacters() {
		unit, _ := w.Entities.Unit(id)
		loc := w.Map.AtPos(unit.Position)
		loc.Special = false
		w.maybeBuildBattle(loc, built)
	}

	// 6. Same for the non-foul guards.
	w.forEachNonFoulGuard(func(loc *worldmap.Location) {
		loc.Special = false
		w.maybeBuildBattle(loc, built)
	})

	// 7. Run every battle built this night.
	for _, b := range w.Battles {
		b.Run(w.Entities, w.Map, w.Rng)
	}
}

// forEachNonFoulGuard visits every guard-bearing Location whose guard is
// not foul, scanning the map row-major so the visit order is
// deterministic.
func (w *World) forEachNonFoulGuard(fn func(*worldmap.Location)) {
	for y := 0; y < worldmap.Height; y++ {
		for x := 0; x < worldmap.Width; x++ {
			loc := w.Map.At(x, y)
			if !loc.HasGuard() {
				continue
			}
			guardUnit, ok := w.Entities.Unit(loc.GuardID)
			if !ok || guardUnit.Race.IsFoul() {
				continue
			}
			fn(loc)
		}
	}
}

// maybeBuildBattle builds and records a Battle for loc if it is contested
// (an army present, or a foul guard) and no battle has been built for loc
// yet this night.
func (w *World) maybeBuildBattle(loc *worldmap.Location, built map[[2]int]bool) {
	key := [2]int{loc.X, loc.Y}
	if built[key] {
		return
	}

	foulGuard := false
	if loc.HasGuard() {
		if guardUnit, ok := w.Entities.Unit(loc.GuardID); ok {
			foulGuard = guardUnit.Race.IsFoul()
		}
	}
	if loc.ArmyCount() == 0 && !foulGuard {
		return
	}

	built[key] = true
	loc.IceFear = w.IceFearAt(loc)
	w.Battles = append(w.Battles, combat.Build(w.Entities, loc, loc.IceFear))
}

// Dawn runs each character's dawn hook: reset time to dawn, clear
// found/killed. Armies and doomguards carry no dawn state of their own;
// character-owned armies recover energy alongside their character during
// the night pass, and doomguards recover none.
func (w *World) Dawn() {
	for _, id := range w.Entities.AllCharacters() {
		char, _ := w.Entities.Character(id)
		char.Time = int(enums.Dawn)
		char.Found = enums.Nothing
		char.Killed = enums.Nothing
	}
}

// EndDay runs Night followed by Dawn, unless the night ended the game.
func (w *World) EndDay() {
	w.Night()
	if !w.GameOver {
		w.Dawn()
	}
}
