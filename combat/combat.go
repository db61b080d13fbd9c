// Package combat resolves the per-location skirmish the night phase builds
// for every contested tile: a constructor assembles the two sides from
// live entity state, a Run method mutates that state, and the small
// helpers guarding each rule stay next to it.
package combat

import (
	"github.com/bytearena/ecs"

	"midnight/coords"
	"midnight/entity"
	"midnight/enums"
	"midnight/randsrc"
	"midnight/worldmap"
)

// Combatant is one army-shaped participant in a Battle: either a guard, or
// one of a character's owned warriors/riders armies, or a doomguard.
// SuccessChance is the per-battle scratch value computed once when the
// Battle is built.
type Combatant struct {
	ID            ecs.EntityID
	Unit          *entity.Unit
	Army          *entity.Army
	SuccessChance int
}

// Battle is built for a single Location that is contested at night: a
// free side (any non-foul guard plus the characters present and their
// armies) and a foul side (a foul guard plus every doomguard on the
// tile).
type Battle struct {
	Location *worldmap.Location

	FreeCharacters []ecs.EntityID
	FreeArmies     []*Combatant
	FoulArmies     []*Combatant

	// Winner is nil until Run is called; after Run it holds the decided
	// race, or remains nil if the battle continues undecided.
	Winner *enums.Race
}

// ridersBattleBonus is the terrain bonus riders-type free armies receive:
// +0x20 on mountain, +0x40 elsewhere.
func ridersBattleBonus(loc *worldmap.Location) int {
	if loc.Feature == enums.Mountain {
		return 0x20
	}
	return 0x40
}

// guardTerrainBonus is the +0x20/+0x10 a guard (or a free army fighting
// alongside a non-foul guard) receives for standing on a citadel or keep.
func guardTerrainBonus(loc *worldmap.Location) int {
	switch loc.Feature {
	case enums.Citadel:
		return 0x20
	case enums.Keep:
		return 0x10
	default:
		return 0
	}
}

// freeArmyChance computes a character-owned army's per-battle success
// chance: start from the army's energy, add the defending-guard terrain
// bonus if a non-foul guard holds this tile, add the riders terrain bonus
// for a riders army, add the fey-on-horse-in-forest bonus, then compress
// to the 0..255 range.
func freeArmyChance(loc *worldmap.Location, nonFoulGuardPresent bool, unit *entity.Unit, army *entity.Army, char *entity.Character) int {
	chance := unit.Energy
	if nonFoulGuardPresent {
		chance += guardTerrainBonus(loc)
	}
	if army.Kind == enums.Riders {
		chance += ridersBattleBonus(loc)
	}
	if unit.Race == enums.Fey && char.OnHorse && loc.Feature == enums.Forest {
		chance += 0x40
	}
	return chance/2 + 0x18
}

// foulArmyChance is the base ice-fear-driven chance every foul army
// receives: ice_fear/4 for riders, ice_fear/5 for warriors.
// A defending foul guard's terrain bonus is added on top by Build, for
// every foul army at the tile.
func foulArmyChance(kind enums.UnitKind, iceFear int) int {
	if kind == enums.Riders {
		return iceFear / 4
	}
	return iceFear / 5
}

// Build assembles a Battle for loc out of live entity state. iceFear is
// the location's cached ice-fear value, used to price the foul side's
// success chances.
func Build(w *entity.World, loc *worldmap.Location, iceFear int) *Battle {
	b := &Battle{Location: loc}

	nonFoulGuard := false
	foulGuard := false
	if loc.HasGuard() {
		guardUnit, _ := w.Unit(loc.GuardID)
		guardArmy, _ := w.Army(loc.GuardID)
		if guardUnit != nil && guardArmy != nil && guardArmy.HowMany > 0 {
			if guardUnit.Race.IsFoul() {
				foulGuard = true
				chance := foulArmyChance(guardArmy.Kind, iceFear) + guardTerrainBonus(loc)
				guardArmy.SuccessChance = chance
				b.FoulArmies = append(b.FoulArmies, &Combatant{ID: loc.GuardID, Unit: guardUnit, Army: guardArmy, SuccessChance: chance})
			} else {
				nonFoulGuard = true
				chance := 0x40
				if guardArmy.Kind == enums.Riders {
					chance = 0x60
				}
				guardArmy.SuccessChance = chance
				b.FreeArmies = append(b.FreeArmies, &Combatant{ID: loc.GuardID, Unit: guardUnit, Army: guardArmy, SuccessChance: chance})
			}
		}
	}

	for _, id := range loc.Characters {
		char, ok := w.Character(id)
		if !ok || !char.IsAlive() || char.Hidden {
			continue
		}
		b.FreeCharacters = append(b.FreeCharacters, id)
		pos := coords.NewPosition(loc.X, loc.Y)
		char.BattleLocation = &pos

		for _, armyID := range []ecs.EntityID{char.Warriors, char.Riders} {
			armyUnit, ok1 := w.Unit(armyID)
			army, ok2 := w.Army(armyID)
			if !ok1 || !ok2 || army.HowMany <= 0 {
				continue
			}
			chance := freeArmyChance(loc, nonFoulGuard, armyUnit, army, char)
			army.SuccessChance = chance
			b.FreeArmies = append(b.FreeArmies, &Combatant{ID: armyID, Unit: armyUnit, Army: army, SuccessChance: chance})
		}
	}

	for _, id := range loc.Armies {
		armyUnit, ok1 := w.Unit(id)
		army, ok2 := w.Army(id)
		if !ok1 || !ok2 || army.HowMany <= 0 {
			continue
		}
		if !armyUnit.Race.IsFoul() {
			continue
		}
		chance := foulArmyChance(army.Kind, iceFear)
		if foulGuard {
			chance += guardTerrainBonus(loc)
		}
		army.SuccessChance = chance
		b.FoulArmies = append(b.FoulArmies, &Combatant{ID: id, Unit: armyUnit, Army: army, SuccessChance: chance})
	}

	return b
}

// skirmish runs attack rolls against enemies, one per enemy present when
// the skirmish starts, stopping after the roll whose index equals the
// attacker's hit count (so at most hits+1 rolls), each roll
// independently succeeding with probability chance/256, picking a
// uniformly random target on success and dealing 5 casualties if the
// target fails its own success-chance save. Dead targets (how_many
// reaching 0) are removed from enemies immediately,
// shifting subsequent picks; the pointer-to-slice lets that mutation stay
// visible to every other skirmish call sharing the same enemy list.
func skirmish(rng randsrc.Source, hits, chance int, enemies *[]*Combatant) int {
	killed := 0
	rolls := len(*enemies)
	for i := 0; i < rolls && len(*enemies) > 0; i++ {
		if rng.Intn(256) < chance {
			idx := rng.Intn(len(*enemies))
			enemy := (*enemies)[idx]
			if rng.Intn(256) > enemy.SuccessChance {
				enemy.Army.HowMany -= 5
				enemy.Army.Casualties += 5
				killed += 5
				if enemy.Army.HowMany <= 0 {
					enemy.Army.HowMany = 0
					*enemies = append((*enemies)[:idx], (*enemies)[idx+1:]...)
				}
			}
		}
		if i >= hits {
			break
		}
	}
	return killed
}
