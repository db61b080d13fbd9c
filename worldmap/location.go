package worldmap

import (
	"github.com/bytearena/ecs"

	"midnight/enums"
)

// Location is a single map tile's mutable state. Units reference a
// Location by its coordinate, not by pointer: the world owns the flat
// grid and occupants carry non-owning ecs.EntityID back-references,
// resolved by looking the entity up in the world's EntityManager.
type Location struct {
	X, Y    int
	Feature enums.Feature
	Object  enums.Object
	Area    enums.Area
	Domain  bool
	Special bool

	// GuardID is the non-owning back-reference to the Army entity guarding
	// this tile. Zero means no guard. Only meaningful when Feature is Keep
	// or Citadel; set is silently ignored otherwise.
	GuardID ecs.EntityID

	// Characters and Armies are the occupant sets, kept in insertion
	// order so every pass over a tile's occupants is deterministic.
	Characters []ecs.EntityID
	Armies     []ecs.EntityID

	// IceFear is the value the night pass last stored here; the night pass
	// computes it only for tiles where it builds a battle. It is a cache,
	// not recomputed by the Location itself (the
	// computation needs Morkin/Luxor/doom-darks-citadels, which live on
	// the world aggregate).
	IceFear int
}

// frozenWaste is the singleton sentinel returned for out-of-bounds queries.
// It carries no state and accepts no occupants.
var frozenWaste = &Location{
	X: -1, Y: -1,
	Feature: enums.FrozenWaste,
	Object:  enums.Nothing,
}

// FrozenWaste returns the shared frozen-waste sentinel.
func FrozenWaste() *Location { return frozenWaste }

// IsFrozenWaste reports whether l is the sentinel (or any tile whose
// feature is frozen waste — border tiles are also impassable).
func (l *Location) IsFrozenWaste() bool {
	return l == frozenWaste || l.Feature == enums.FrozenWaste
}

func newLocation(x, y int, feature enums.Feature, object enums.Object, area enums.Area, domain, special bool) *Location {
	return &Location{
		X: x, Y: y,
		Feature: feature,
		Object:  object,
		Area:    area,
		Domain:  domain,
		Special: special,
	}
}

// SetGuard assigns a guarding army; silently ignored on tiles that are not
// a keep or citadel.
func (l *Location) SetGuard(id ecs.EntityID) {
	if !l.Feature.IsKeepOrCitadel() {
		return
	}
	l.GuardID = id
}

// HasGuard reports whether l is a keep or citadel with a guard assigned;
// the guard's headcount is not checked.
func (l *Location) HasGuard() bool {
	return l.Feature.IsKeepOrCitadel() && l.GuardID != 0
}

// AddCharacter records id as present at l.
func (l *Location) AddCharacter(id ecs.EntityID) {
	if !containsID(l.Characters, id) {
		l.Characters = append(l.Characters, id)
	}
}

// RemoveCharacter removes id from l's occupant set.
func (l *Location) RemoveCharacter(id ecs.EntityID) {
	l.Characters = removeID(l.Characters, id)
}

// HasCharacter reports whether id is present at l.
func (l *Location) HasCharacter(id ecs.EntityID) bool {
	return containsID(l.Characters, id)
}

// AddArmy records id as present at l.
func (l *Location) AddArmy(id ecs.EntityID) {
	if !containsID(l.Armies, id) {
		l.Armies = append(l.Armies, id)
	}
}

// RemoveArmy removes id from l's occupant set.
func (l *Location) RemoveArmy(id ecs.EntityID) {
	l.Armies = removeID(l.Armies, id)
}

// HasArmy reports whether id is present at l.
func (l *Location) HasArmy(id ecs.EntityID) bool {
	return containsID(l.Armies, id)
}

func containsID(ids []ecs.EntityID, id ecs.EntityID) bool {
	for _, have := range ids {
		if have == id {
			return true
		}
	}
	return false
}

func removeID(ids []ecs.EntityID, id ecs.EntityID) []ecs.EntityID {
	for i, have := range ids {
		if have == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// CharacterCount returns the number of characters present.
func (l *Location) CharacterCount() int { return len(l.Characters) }

// ArmyCount returns the number of non-guard armies present.
func (l *Location) ArmyCount() int { return len(l.Armies) }

// RefreshFeature applies the PLAINS<->ARMY auto-cycling invariant: a
// tile whose base terrain is plains-or-army becomes ARMY while occupied is
// true, and reverts to PLAINS otherwise. Any other feature is left
// untouched — the caller (whoever just changed the occupant sets) decides
// `occupied` by checking for any army, or any character with non-zero
// soldiers, at this tile.
func (l *Location) RefreshFeature(occupied bool) {
	if l.Feature != enums.Plains && l.Feature != enums.Army {
		return
	}
	if occupied {
		l.Feature = enums.Army
	} else {
		l.Feature = enums.Plains
	}
}

// ClearObject sets the tile's object back to nothing, e.g. after a beast is
// killed or a magical object is consumed.
func (l *Location) ClearObject() {
	l.Object = enums.Nothing
}
