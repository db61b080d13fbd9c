// Package actions implements the day-phase character commands: each is a
// mutating method, most paired with a Can* predicate of the same name
// (TurnLeft, TurnRight, Seek and DropObject have none), applied one at a
// time to the currently controlled character.
package actions

import (
	"errors"

	"github.com/bytearena/ecs"

	"midnight/combat"
	"midnight/coords"
	"midnight/entity"
	"midnight/enums"
	"midnight/randsrc"
	"midnight/worldmap"
)

// ErrActionUnavailable is returned by every mutating method whose Can*
// predicate is false. World state is left unchanged on failure.
var ErrActionUnavailable = errors.New("action unavailable")

// Controller wires the character action surface to a populated world, map,
// and random source.
type Controller struct {
	World *entity.World
	Map   *worldmap.Map
	Rng   randsrc.Source

	// IceFear computes the live ice-fear value for a tile; the courage
	// gate on attack reads it. Left nil, the tile's cached value from the
	// last night pass is used instead.
	IceFear func(*worldmap.Location) int
}

// NewController returns a Controller bound to w, m, and rng.
func NewController(w *entity.World, m *worldmap.Map, rng randsrc.Source) *Controller {
	return &Controller{World: w, Map: m, Rng: rng}
}

func (c *Controller) iceFearAt(loc *worldmap.Location) int {
	if c.IceFear != nil {
		return c.IceFear(loc)
	}
	return loc.IceFear
}

func (c *Controller) lookup(id ecs.EntityID) (*entity.Character, *entity.Unit, bool) {
	char, ok := c.World.Character(id)
	if !ok {
		return nil, nil, false
	}
	unit, ok := c.World.Unit(id)
	if !ok {
		return nil, nil, false
	}
	return char, unit, true
}

func (c *Controller) location(unit *entity.Unit) *worldmap.Location {
	return c.Map.AtPos(unit.Position)
}

// CanLeave is the shared departure predicate: alive, not hidden, either
// it is dawn or the tile is clear of enemies, and the tile's object is
// not a beast holding the character in place.
func (c *Controller) CanLeave(id ecs.EntityID) bool {
	char, unit, ok := c.lookup(id)
	if !ok {
		return false
	}
	return c.canLeave(char, unit)
}

func (c *Controller) canLeave(char *entity.Character, unit *entity.Unit) bool {
	if !char.IsAlive() || char.Hidden {
		return false
	}
	loc := c.location(unit)
	if !enums.Time(char.Time).IsDawn() {
		if loc.ArmyCount() > 0 {
			return false
		}
		if loc.HasGuard() {
			guardUnit, ok := c.World.Unit(loc.GuardID)
			if ok && guardUnit.Race.IsFoul() {
				return false
			}
		}
	}
	return !loc.Object.IsBeast()
}

// TurnRight rotates the character's facing one step clockwise.
func (c *Controller) TurnRight(id ecs.EntityID) error {
	_, unit, ok := c.lookup(id)
	if !ok {
		return ErrActionUnavailable
	}
	unit.Direction = unit.Direction.TurnRight()
	return nil
}

// TurnLeft rotates the character's facing one step counter-clockwise.
func (c *Controller) TurnLeft(id ecs.EntityID) error {
	_, unit, ok := c.lookup(id)
	if !ok {
		return ErrActionUnavailable
	}
	unit.Direction = unit.Direction.TurnLeft()
	return nil
}

// CanWalkForward reports whether the character can step into the tile it
// faces.
func (c *Controller) CanWalkForward(id ecs.EntityID) bool {
	char, unit, ok := c.lookup(id)
	if !ok {
		return false
	}
	return c.canWalkForward(char, unit)
}

func (c *Controller) canWalkForward(char *entity.Character, unit *entity.Unit) bool {
	if !c.canLeave(char, unit) {
		return false
	}
	if enums.Time(char.Time).IsNight() {
		return false
	}
	if unit.Condition() == enums.UtterlyTired {
		return false
	}
	loc := c.location(unit)
	dest := c.Map.InFront(loc, unit.Direction)
	if dest.IsFrozenWaste() {
		return false
	}
	if dest.CharacterCount() >= 29 {
		return false
	}
	if dest.ArmyCount() > 0 {
		return false
	}
	if dest.HasGuard() {
		guardUnit, ok := c.World.Unit(dest.GuardID)
		if ok && guardUnit.Race.IsFoul() {
			return false
		}
	}
	return true
}

// terrainDrain is the feature-specific energy cost a character pays to
// enter dest: downs +1, mountain +4, forest for a fey character +3.
// Mutually exclusive since a tile has one feature.
func terrainDrain(dest *worldmap.Location, race enums.Race) int {
	switch dest.Feature {
	case enums.Downs:
		return 1
	case enums.Mountain:
		return 4
	case enums.Forest:
		if race == enums.Fey {
			return 3
		}
	}
	return 0
}

// walkDrain computes the full energy/time cost of a step in dir landing
// on dest: a diagonal step costs one extra, terrain adds its own bonus,
// the total doubles unless the character is mounted, and Farflame's
// movement always costs exactly 1 regardless of any of the above.
func walkDrain(dest *worldmap.Location, dir enums.Direction, char *entity.Character, unit *entity.Unit) int {
	if char.IsFarflame() {
		return 1
	}
	d := 2
	if dir.IsDiagonal() {
		d++
	}
	d += terrainDrain(dest, unit.Race)
	if !char.OnHorse {
		d *= 2
	}
	return d
}

// stepInto moves the character from its current tile onto dest, applying
// the walk drain to the character and both of its armies, and clearing
// the per-day battle/found/killed scratch fields. Shared by WalkForward
// and Attack.
func (c *Controller) stepInto(id ecs.EntityID, char *entity.Character, unit *entity.Unit, dest *worldmap.Location) {
	old := c.location(unit)
	drain := walkDrain(dest, unit.Direction, char, unit)

	old.RemoveCharacter(id)
	old.RefreshFeature(c.World.TileHoldsSoldiers(old))

	unit.Position = coords.NewPosition(dest.X, dest.Y)
	dest.AddCharacter(id)
	dest.RefreshFeature(c.World.TileHoldsSoldiers(dest))

	char.Time -= drain
	if char.Time < 0 {
		char.Time = 0
	}
	unit.AddEnergy(-drain)
	for _, armyID := range []ecs.EntityID{char.Warriors, char.Riders} {
		if armyUnit, ok := c.World.Unit(armyID); ok {
			armyUnit.AddEnergy(-drain)
		}
	}

	char.BattleLocation = nil
	char.Found = enums.Nothing
	char.Killed = enums.Nothing
}

// WalkForward steps the character into the tile it faces.
func (c *Controller) WalkForward(id ecs.EntityID) error {
	char, unit, ok := c.lookup(id)
	if !ok || !c.canWalkForward(char, unit) {
		return ErrActionUnavailable
	}
	dest := c.Map.InFront(c.location(unit), unit.Direction)
	c.stepInto(id, char, unit, dest)
	return nil
}

// CanAttack reports whether the character may charge the tile it faces.
func (c *Controller) CanAttack(id ecs.EntityID) bool {
	char, unit, ok := c.lookup(id)
	if !ok {
		return false
	}
	return c.canAttack(char, unit)
}

func (c *Controller) canAttack(char *entity.Character, unit *entity.Unit) bool {
	if !c.canLeave(char, unit) {
		return false
	}
	loc := c.location(unit)
	dest := c.Map.InFront(loc, unit.Direction)
	destHasArmies := dest.ArmyCount() > 0
	destGuardFoul := false
	if dest.HasGuard() {
		if guardUnit, ok := c.World.Unit(dest.GuardID); ok {
			destGuardFoul = guardUnit.Race.IsFoul()
		}
	}
	if !destHasArmies && !destGuardFoul {
		return false
	}
	return char.Courage(c.iceFearAt(loc)) != enums.UtterlyAfraid
}

// Attack walks the character into the contested tile it faces; the night
// pipeline is what actually builds and runs the Battle.
func (c *Controller) Attack(id ecs.EntityID) error {
	char, unit, ok := c.lookup(id)
	if !ok || !c.canAttack(char, unit) {
		return ErrActionUnavailable
	}
	// Attack shares the departure predicate with WalkForward but not its
	// destination-occupancy checks (an attack's whole point is a contested
	// destination), so it moves directly rather than calling WalkForward.
	dest := c.Map.InFront(c.location(unit), unit.Direction)
	c.stepInto(id, char, unit, dest)
	return nil
}

// Seek takes (and reacts to) the object on the character's current
// tile, returning whatever was found.
func (c *Controller) Seek(id ecs.EntityID) (enums.Object, error) {
	char, unit, ok := c.lookup(id)
	if !ok || !char.IsAlive() {
		return enums.Nothing, ErrActionUnavailable
	}
	loc := c.location(unit)
	obj := loc.Object
	char.Found = obj

	switch obj {
	case enums.Dragonslayer, enums.Wolfslayer:
		if char.CarriedObject != enums.IceCrown && char.CarriedObject != enums.MoonRing {
			char.CarriedObject, loc.Object = obj, char.CarriedObject
		}
	case enums.WildHorses:
		switch unit.Race {
		case enums.Free, enums.Fey, enums.Targ, enums.Wise:
			char.OnHorse = true
		}
	case enums.Shelter:
		unit.AddEnergy(16)
		loc.ClearObject()
	case enums.HandOfDark:
		char.Time = int(enums.Night)
		loc.ClearObject()
	case enums.CupOfDreams:
		char.Time = int(enums.Dawn)
		loc.ClearObject()
	case enums.WatersOfLife:
		unit.SetEnergy(120)
		setArmyEnergy(c.World, char.Warriors, 120)
		setArmyEnergy(c.World, char.Riders, 120)
		loc.ClearObject()
	case enums.ShadowsOfDeath:
		unit.SetEnergy(0)
		setArmyEnergy(c.World, char.Warriors, 0)
		setArmyEnergy(c.World, char.Riders, 0)
		loc.ClearObject()
	case enums.IceCrown, enums.MoonRing:
		if char.IsMorkin() {
			char.CarriedObject, loc.Object = obj, char.CarriedObject
		}
	}

	return obj, nil
}

func setArmyEnergy(w *entity.World, id ecs.EntityID, value int) {
	if unit, ok := w.Unit(id); ok {
		unit.SetEnergy(value)
	}
}

// DropObject places the carried object on the current tile.
func (c *Controller) DropObject(id ecs.EntityID) error {
	char, unit, ok := c.lookup(id)
	if !ok {
		return ErrActionUnavailable
	}
	loc := c.location(unit)
	loc.Object = char.CarriedObject
	char.CarriedObject = enums.Nothing
	return nil
}

// CanFight reports whether the character may fight the beast on its
// tile.
func (c *Controller) CanFight(id ecs.EntityID) bool {
	char, unit, ok := c.lookup(id)
	if !ok {
		return false
	}
	return c.canFight(char, unit)
}

func (c *Controller) canFight(char *entity.Character, unit *entity.Unit) bool {
	if char.Hidden {
		return false
	}
	loc := c.location(unit)
	if !loc.Object.IsBeast() {
		return false
	}
	return loc.ArmyCount() == 0 || char.IsMorkin()
}

// Fight battles the beast on the character's tile.
func (c *Controller) Fight(id ecs.EntityID) error {
	char, unit, ok := c.lookup(id)
	if !ok || !c.canFight(char, unit) {
		return ErrActionUnavailable
	}
	loc := c.location(unit)
	beast := loc.Object
	char.Killed = beast

	// Any character at this tile with soldiers kills the beast outright,
	// not just the one doing the fighting.
	hasSoldiers := false
	for _, otherID := range loc.Characters {
		other, ok := c.World.Character(otherID)
		if !ok {
			continue
		}
		if warriors, ok := c.World.Army(other.Warriors); ok && warriors.HowMany > 0 {
			hasSoldiers = true
		}
		if riders, ok := c.World.Army(other.Riders); ok && riders.HowMany > 0 {
			hasSoldiers = true
		}
	}

	outright := hasSoldiers ||
		(beast == enums.Wolves && char.CarriedObject == enums.Wolfslayer) ||
		(beast == enums.Dragons && char.CarriedObject == enums.Dragonslayer)

	if !outright {
		combat.MaybeLose(c.Rng, char, unit)
	}

	loc.ClearObject()
	return nil
}

// CanRecruit reports whether the recruiter may recruit the target
// character.
func (c *Controller) CanRecruit(id, targetID ecs.EntityID) bool {
	char, unit, ok := c.lookup(id)
	target, targetUnit, ok2 := c.lookup(targetID)
	if !ok || !ok2 {
		return false
	}
	return c.canRecruit(char, unit, target, targetUnit)
}

func (c *Controller) canRecruit(char *entity.Character, unit *entity.Unit, target *entity.Character, targetUnit *entity.Unit) bool {
	if target.Recruited {
		return false
	}
	if unit.Position != targetUnit.Position {
		return false
	}
	if char.RecruitingKey&target.RecruitedByKey == 0 {
		return false
	}
	loc := c.location(unit)
	return loc.ArmyCount() == 0 || char.IsMorkin()
}

// Recruit marks the co-located target character as recruited.
func (c *Controller) Recruit(id, targetID ecs.EntityID) error {
	char, unit, ok := c.lookup(id)
	target, targetUnit, ok2 := c.lookup(targetID)
	if !ok || !ok2 || !c.canRecruit(char, unit, target, targetUnit) {
		return ErrActionUnavailable
	}
	target.Recruited = true
	return nil
}

// CanRecruitMen reports whether the character may draw soldiers from the
// guard on its tile.
func (c *Controller) CanRecruitMen(id ecs.EntityID) bool {
	char, unit, ok := c.lookup(id)
	if !ok {
		return false
	}
	return c.canRecruitMen(char, unit)
}

func (c *Controller) canRecruitMen(char *entity.Character, unit *entity.Unit) bool {
	loc := c.location(unit)
	if !loc.HasGuard() {
		return false
	}
	guardUnit, _ := c.World.Unit(loc.GuardID)
	guardArmy, _ := c.World.Army(loc.GuardID)
	if guardUnit.Race != unit.Race || guardArmy.HowMany <= 125 {
		return false
	}
	riders, _ := c.World.Army(char.Riders)
	warriors, _ := c.World.Army(char.Warriors)
	roomToGrow := (guardArmy.Kind == enums.Riders && riders.HowMany < 1175) ||
		(guardArmy.Kind == enums.Warriors && warriors.HowMany < 1175)
	if !roomToGrow {
		return false
	}
	return loc.ArmyCount() == 0 || char.IsMorkin()
}

// RecruitMen moves 100 soldiers from the guard into the matching one of
// the character's own armies.
func (c *Controller) RecruitMen(id ecs.EntityID) error {
	char, unit, ok := c.lookup(id)
	if !ok || !c.canRecruitMen(char, unit) {
		return ErrActionUnavailable
	}
	loc := c.location(unit)
	guardArmy, _ := c.World.Army(loc.GuardID)
	own := char.Warriors
	if guardArmy.Kind == enums.Riders {
		own = char.Riders
	}
	ownArmy, _ := c.World.Army(own)
	guardArmy.HowMany -= 100
	ownArmy.HowMany += 100
	return nil
}

// CanStandOnGuard is the mirror image of CanRecruitMen: whether the
// character may leave soldiers with the guard on its tile.
func (c *Controller) CanStandOnGuard(id ecs.EntityID) bool {
	char, unit, ok := c.lookup(id)
	if !ok {
		return false
	}
	return c.canStandOnGuard(char, unit)
}

func (c *Controller) canStandOnGuard(char *entity.Character, unit *entity.Unit) bool {
	loc := c.location(unit)
	if !loc.HasGuard() {
		return false
	}
	guardUnit, _ := c.World.Unit(loc.GuardID)
	guardArmy, _ := c.World.Army(loc.GuardID)
	if guardUnit.Race != unit.Race || guardArmy.HowMany >= 1175 {
		return false
	}
	var own *entity.Army
	if guardArmy.Kind == enums.Riders {
		own, _ = c.World.Army(char.Riders)
	} else {
		own, _ = c.World.Army(char.Warriors)
	}
	if own == nil || own.HowMany < 100 {
		return false
	}
	return loc.ArmyCount() == 0 || char.IsMorkin()
}

// StandOnGuard moves 100 of the character's matching soldiers into the
// guard.
func (c *Controller) StandOnGuard(id ecs.EntityID) error {
	char, unit, ok := c.lookup(id)
	if !ok || !c.canStandOnGuard(char, unit) {
		return ErrActionUnavailable
	}
	loc := c.location(unit)
	guardArmy, _ := c.World.Army(loc.GuardID)
	own := char.Warriors
	if guardArmy.Kind == enums.Riders {
		own = char.Riders
	}
	ownArmy, _ := c.World.Army(own)
	ownArmy.HowMany -= 100
	guardArmy.HowMany += 100
	return nil
}

// CanHide reports whether the character may slip out of sight.
func (c *Controller) CanHide(id ecs.EntityID) bool {
	char, _, ok := c.lookup(id)
	if !ok {
		return false
	}
	return c.canHide(char)
}

func (c *Controller) canHide(char *entity.Character) bool {
	if char.IsMorkin() {
		return false
	}
	warriors, _ := c.World.Army(char.Warriors)
	riders, _ := c.World.Army(char.Riders)
	return (warriors == nil || warriors.HowMany == 0) && (riders == nil || riders.HowMany == 0)
}

// Hide takes the character out of sight until it moves again.
func (c *Controller) Hide(id ecs.EntityID) error {
	char, _, ok := c.lookup(id)
	if !ok || !c.canHide(char) {
		return ErrActionUnavailable
	}
	char.Hidden = true
	return nil
}
