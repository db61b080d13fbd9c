package combat

import (
	"github.com/bytearena/ecs"

	"midnight/coords"
	"midnight/entity"
	"midnight/enums"
	"midnight/randsrc"
	"midnight/worldmap"
)

// Run executes one full battle pass: every character and free army
// attacks the foul side, every foul army attacks the free side,
// casualties apply immediately (so a later skirmish in the same pass sees
// a shrunk enemy list), then the winner is decided and its side effects
// applied.
func (b *Battle) Run(w *entity.World, m *worldmap.Map, rng randsrc.Source) *enums.Race {
	for _, charID := range b.FreeCharacters {
		char, _ := w.Character(charID)
		unit, _ := w.Unit(charID)
		hits := char.Strength
		chance := unit.Energy + 0x80
		unit.EnemyKilled = skirmish(rng, hits, chance, &b.FoulArmies)
	}

	for _, c := range b.FreeArmies {
		hits := c.Army.HowMany / 5
		c.Unit.EnemyKilled = skirmish(rng, hits, c.SuccessChance, &b.FoulArmies)
	}

	for _, c := range b.FoulArmies {
		hits := c.Army.HowMany / 5
		c.Unit.EnemyKilled = skirmish(rng, hits, c.SuccessChance, &b.FreeArmies)
	}

	b.determineResult(w, m, rng)
	return b.Winner
}

func raceOf(r enums.Race) enums.Race {
	if r.IsFoul() {
		return enums.Foul
	}
	return enums.Free
}

// determineResult decides (or leaves undecided) a winner, applies the
// flat energy losses, resolves the guard's fate, and on a foul win
// displaces and possibly kills every free character.
func (b *Battle) determineResult(w *entity.World, m *worldmap.Map, rng randsrc.Source) {
	// Only the army lists decide the outcome: characters fighting on with
	// no armies left still lose the tile to a surviving foul side.
	switch {
	case len(b.FoulArmies) == 0:
		free := enums.Free
		b.Winner = &free
	case len(b.FreeArmies) == 0:
		foul := enums.Foul
		b.Winner = &foul
	default:
		b.Winner = nil
	}

	for _, c := range b.FreeArmies {
		c.Unit.AddEnergy(-0x18)
	}
	for _, charID := range b.FreeCharacters {
		unit, _ := w.Unit(charID)
		unit.AddEnergy(-0x14)
	}

	if b.Location.HasGuard() {
		guardUnit, _ := w.Unit(b.Location.GuardID)
		guardArmy, _ := w.Army(b.Location.GuardID)
		if guardUnit != nil && guardArmy != nil {
			if b.Winner != nil && raceOf(guardUnit.Race) != *b.Winner {
				if *b.Winner == enums.Free {
					guardUnit.Race = enums.Free
					guardArmy.HowMany = 200
				} else {
					guardUnit.Race = enums.Foul
					guardArmy.HowMany = 250
				}
			} else if b.Winner == nil && guardArmy.HowMany == 0 {
				guardArmy.HowMany += 20
			}
		}
	}

	if b.Winner != nil && *b.Winner == enums.Foul {
		for _, charID := range b.FreeCharacters {
			char, _ := w.Character(charID)
			unit, _ := w.Unit(charID)
			MaybeLose(rng, char, unit)
			displace(w, m, rng, charID, char, unit)
		}
	}

	w.RemoveDrainedDoomguards(b.Location)
}

// displace moves a battle-losing character to a random non-frozen-waste
// neighbor of its current tile, retrying a random direction until one is
// found.
func displace(w *entity.World, m *worldmap.Map, rng randsrc.Source, charID ecs.EntityID, char *entity.Character, unit *entity.Unit) {
	if !char.IsAlive() {
		return
	}
	old := m.AtPos(unit.Position)
	var next *worldmap.Location
	for {
		dir := enums.Direction(rng.Intn(8))
		candidate := m.InFront(old, dir)
		if !candidate.IsFrozenWaste() {
			next = candidate
			break
		}
	}
	old.RemoveCharacter(charID)
	old.RefreshFeature(w.TileHoldsSoldiers(old))

	unit.Position = coords.NewPosition(next.X, next.Y)
	next.AddCharacter(charID)
	next.RefreshFeature(w.TileHoldsSoldiers(next))
}
