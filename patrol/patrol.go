// Package patrol drives doomguard night movement: a fixed
// FOLLOW/GOTO/ROUTE/WANDER order dispatch spending a per-night move-cost
// budget. There is no open pathfinding — a doomguard never routes around
// an obstacle, it just retries a nearby heading.
package patrol

import (
	"github.com/bytearena/ecs"

	"midnight/coords"
	"midnight/entity"
	"midnight/enums"
	"midnight/randsrc"
	"midnight/worldmap"
)

// Patroller runs execute_move for a single doomguard against a shared world,
// map, and random source, the way actions.Controller runs a character's
// day-phase commands.
type Patroller struct {
	World *entity.World
	Map   *worldmap.Map
	Rng   randsrc.Source
}

// New returns a Patroller bound to w, m, and rng.
func New(w *entity.World, m *worldmap.Map, rng randsrc.Source) *Patroller {
	return &Patroller{World: w, Map: m, Rng: rng}
}

// Run steps the doomguard in a loop until its move budget is exhausted
// or a step declines to move, then resets the budget for the next night.
// Called once per doomguard by the night orchestration.
func (p *Patroller) Run(id ecs.EntityID) {
	doom, ok := p.World.Doomguard(id)
	if !ok {
		return
	}
	for !doom.Exhausted() {
		if !p.executeMove(id, doom) {
			break
		}
	}
	doom.ResetForNight()
}

// executeMove performs one step of the doomguard's movement logic. It
// returns false when the doomguard should take no further steps this
// night (camping its own special tile, a GOTO target that lost its
// special flag, or a move_to that refuses to enter an overcrowded tile).
func (p *Patroller) executeMove(id ecs.EntityID, doom *entity.Doomguard) bool {
	unit, ok := p.World.Unit(id)
	if !ok {
		return false
	}
	cur := p.Map.AtPos(unit.Position)

	if cur.Special {
		return false
	}

	for i := 0; i < 8; i++ {
		dir := enums.Direction(i)
		neighbor := p.Map.InFront(cur, dir)
		if neighbor.Special {
			return p.moveTo(id, doom, unit, cur, dir)
		}
	}

	switch doom.Orders {
	case enums.Follow:
		return p.follow(id, doom, unit, cur)
	case enums.Goto:
		return p.goTo(id, doom, unit, cur)
	case enums.Route:
		return p.route(id, doom, unit, cur)
	case enums.Wander:
		return p.wander(id, doom, unit, cur)
	default:
		return false
	}
}

func (p *Patroller) follow(id ecs.EntityID, doom *entity.Doomguard, unit *entity.Unit, cur *worldmap.Location) bool {
	char, ok := p.World.Character(doom.TargetCharacter)
	if !ok || !char.IsAlive() {
		luxorID := p.World.CharacterByRosterID[0]
		luxor, _ := p.World.Character(luxorID)
		if luxor != nil && luxor.IsAlive() {
			doom.TargetCharacter = luxorID
		} else {
			doom.TargetCharacter = p.World.CharacterByRosterID[1]
		}
	}
	targetUnit, ok := p.World.Unit(doom.TargetCharacter)
	if !ok {
		return false
	}
	dest := p.Map.AtPos(targetUnit.Position)
	return p.moveTowards(id, doom, unit, cur, dest)
}

func (p *Patroller) goTo(id ecs.EntityID, doom *entity.Doomguard, unit *entity.Unit, cur *worldmap.Location) bool {
	dest := p.Map.AtPos(doom.TargetPos)
	if !dest.Special {
		return false
	}
	return p.moveTowards(id, doom, unit, cur, dest)
}

func (p *Patroller) route(id ecs.EntityID, doom *entity.Doomguard, unit *entity.Unit, cur *worldmap.Location) bool {
	target := p.Map.AtPos(doom.TargetPos)
	if cur.X == target.X && cur.Y == target.Y {
		var next *worldmap.Location
		if p.Rng.Intn(2) == 0 {
			next = p.Map.NextNodeA(target)
		} else {
			next = p.Map.NextNodeB(target)
		}
		if next != nil {
			doom.TargetPos = coords.NewPosition(next.X, next.Y)
			target = next
		}
	}
	return p.moveTowards(id, doom, unit, cur, target)
}

func (p *Patroller) wander(id ecs.EntityID, doom *entity.Doomguard, unit *entity.Unit, cur *worldmap.Location) bool {
	for {
		dir := enums.Direction(p.Rng.Intn(8))
		neighbor := p.Map.InFront(cur, dir)
		if !neighbor.IsFrozenWaste() {
			return p.moveTo(id, doom, unit, cur, dir)
		}
	}
}

// moveTowards picks a heading biased toward dest, retrying up to 8 times
// to avoid forest, mountain, and frozen waste.
func (p *Patroller) moveTowards(id ecs.EntityID, doom *entity.Doomguard, unit *entity.Unit, cur, dest *worldmap.Location) bool {
	if cur.X == dest.X && cur.Y == dest.Y {
		return false
	}
	straight := coords.NewPosition(cur.X, cur.Y).DirectionTo(coords.NewPosition(dest.X, dest.Y))

	chosenDir := straight
	var chosen *worldmap.Location
	for attempt := 0; attempt < 8; attempt++ {
		switch r := p.Rng.Intn(4); {
		case r < 2:
			chosenDir = straight
		case r == 2:
			chosenDir = straight.TurnLeft()
		default:
			chosenDir = straight.TurnRight()
		}
		chosen = p.Map.InFront(cur, chosenDir)
		if chosen.Feature != enums.Forest && chosen.Feature != enums.Mountain && !chosen.IsFrozenWaste() {
			break
		}
	}

	if chosen.IsFrozenWaste() {
		return false
	}
	return p.moveTo(id, doom, unit, cur, chosenDir)
}

// moveTo applies the move-cost and occupancy rules and relocates the
// doomguard from cur to the neighbor in dir.
func (p *Patroller) moveTo(id ecs.EntityID, doom *entity.Doomguard, unit *entity.Unit, cur *worldmap.Location, dir enums.Direction) bool {
	dest := p.Map.InFront(cur, dir)
	if dest.ArmyCount() > 0x1f {
		return false
	}

	army, ok := p.World.Army(id)
	if !ok {
		return false
	}
	cost := 2
	if dest.Feature == enums.Forest || dest.Feature == enums.Mountain {
		cost = 8
	}
	if army.Kind == enums.Riders {
		cost /= 2
	}
	doom.MoveCount += cost

	cur.RemoveArmy(id)
	cur.RefreshFeature(p.World.TileHoldsSoldiers(cur))

	unit.Position = coords.NewPosition(dest.X, dest.Y)
	unit.Direction = dir
	dest.AddArmy(id)
	dest.RefreshFeature(true)

	return true
}
