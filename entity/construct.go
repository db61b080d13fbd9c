package entity

import (
	"github.com/bytearena/ecs"

	"midnight/coords"
	"midnight/enums"
	"midnight/worldmap"
)

// World is the fully populated entity manager plus the roster-id lookup
// table the rest of the engine needs to resolve FOLLOW targets and
// recruitment bookkeeping by the character ids baked into the roster data.
type World struct {
	*Manager

	// CharacterByRosterID maps a CharacterSeed.ID (0..31) to its entity id.
	CharacterByRosterID map[int]ecs.EntityID

	// DoomguardByIndex maps a DoomguardRoster index to its entity id.
	DoomguardByIndex map[int]ecs.EntityID

	nextDoomguardID int
}

// NewWorld builds every character, guard army, and doomguard army named in
// the roster tables, places them onto m, and returns the populated World.
func NewWorld(m *worldmap.Map) *World {
	w := &World{
		Manager:             NewManager(),
		CharacterByRosterID: make(map[int]ecs.EntityID),
		DoomguardByIndex:    make(map[int]ecs.EntityID),
	}

	for _, seed := range CharacterRoster {
		id := w.addCharacter(m, seed)
		w.CharacterByRosterID[seed.ID] = id
	}

	for _, seed := range GuardRoster {
		w.addGuard(m, seed)
	}

	for i, seed := range DoomguardRoster {
		w.DoomguardByIndex[i] = w.addDoomguard(m, seed)
	}

	return w
}

// addArmy creates an army entity without registering it on a tile: a
// character's own warriors and riders travel with the character and never
// enter a Location's army set, and a guard is reachable only through its
// tile's GuardID. Only doomguards live in the army sets.
func (w *World) addArmy(race enums.Race, kind enums.UnitKind, howMany int, pos coords.Position) ecs.EntityID {
	unit := &Unit{Race: race, Energy: 88, Position: pos, Direction: enums.North}
	army := &Army{Kind: kind, HowMany: howMany}
	e := w.World.NewEntity().
		AddComponent(w.UnitComponent, unit).
		AddComponent(w.ArmyComponent, army)
	return e.GetID()
}

func (w *World) addCharacter(m *worldmap.Map, seed CharacterSeed) ecs.EntityID {
	pos := coords.NewPosition(seed.X, seed.Y)
	unit := &Unit{Race: seed.Race, Energy: seed.Energy, Position: pos, Direction: seed.Direction}

	warriorsID := w.addArmy(seed.Race, enums.Warriors, seed.Warriors, pos)
	ridersID := w.addArmy(seed.Race, enums.Riders, seed.Riders, pos)

	carried := enums.Nothing
	if seed.ID == 0 {
		carried = enums.MoonRing
	}

	character := &Character{
		ID:             seed.ID,
		Name:           seed.Name,
		Title:          seed.Title,
		Life:           seed.Life,
		Strength:       seed.Strength,
		CourageBase:    seed.CourageBase,
		RecruitingKey:  seed.RecruitingKey,
		RecruitedByKey: seed.RecruitedByKey,
		CarriedObject:  carried,
		Time:           16,
		Warriors:       warriorsID,
		Riders:         ridersID,
	}

	e := w.World.NewEntity().
		AddComponent(w.UnitComponent, unit).
		AddComponent(w.CharacterComponent, character)
	id := e.GetID()

	loc := m.AtPos(pos)
	loc.AddCharacter(id)
	loc.RefreshFeature(w.TileHoldsSoldiers(loc))
	return id
}

func (w *World) addGuard(m *worldmap.Map, seed GuardSeed) ecs.EntityID {
	pos := coords.NewPosition(seed.X, seed.Y)
	id := w.addArmy(seed.Race, seed.Kind, seed.HowMany, pos)
	m.AtPos(pos).SetGuard(id)
	return id
}

func (w *World) addDoomguard(m *worldmap.Map, seed DoomguardSeed) ecs.EntityID {
	pos := coords.NewPosition(seed.X, seed.Y)
	unit := &Unit{Race: enums.Foul, Energy: 88, Position: pos, Direction: enums.North}
	army := &Army{Kind: seed.Kind, HowMany: seed.HowMany}

	doom := &Doomguard{ID: w.nextDoomguardID, Orders: seed.Orders}
	w.nextDoomguardID++
	switch seed.TargetKind {
	case TargetLuxor:
		doom.TargetKind = DoomguardTargetCharacter
		doom.TargetCharacter = w.CharacterByRosterID[0]
	case TargetMorkin:
		doom.TargetKind = DoomguardTargetCharacter
		doom.TargetCharacter = w.CharacterByRosterID[1]
	case TargetCharacter:
		doom.TargetKind = DoomguardTargetCharacter
		doom.TargetCharacter = w.CharacterByRosterID[seed.TargetCharacterID]
	case TargetNone:
		doom.TargetKind = DoomguardTargetLocation
		doom.TargetPos = pos
	}

	e := w.World.NewEntity().
		AddComponent(w.UnitComponent, unit).
		AddComponent(w.ArmyComponent, army).
		AddComponent(w.DoomguardComponent, doom)
	id := e.GetID()

	if seed.HowMany > 0 {
		loc := m.AtPos(pos)
		loc.AddArmy(id)
		loc.RefreshFeature(true)
	}
	return id
}
