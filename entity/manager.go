// Package entity wires the Unit/Army/Character/Doomguard data model onto
// the bytearena/ecs substrate: each movable thing is an entity whose
// component data the rest of the engine looks up by id.
package entity

import (
	"github.com/bytearena/ecs"
)

// Manager wraps an ecs.Manager and the component/tag handles every package
// in this module needs to look entities up by role, generalizing
// common.EntityManager to the four entity kinds this engine has (character,
// army, doomguard, and the implicit guard-army kind).
type Manager struct {
	World *ecs.Manager

	UnitComponent      *ecs.Component
	CharacterComponent *ecs.Component
	ArmyComponent      *ecs.Component
	DoomguardComponent *ecs.Component

	CharacterTag ecs.Tag
	ArmyTag      ecs.Tag
	DoomguardTag ecs.Tag
}

// NewManager builds an empty Manager with its components and tags
// registered, mirroring NewEntityManager's construction order.
func NewManager() *Manager {
	m := &Manager{World: ecs.NewManager()}

	m.UnitComponent = m.World.NewComponent()
	m.CharacterComponent = m.World.NewComponent()
	m.ArmyComponent = m.World.NewComponent()
	m.DoomguardComponent = m.World.NewComponent()

	m.CharacterTag = ecs.BuildTag(m.UnitComponent, m.CharacterComponent)
	m.ArmyTag = ecs.BuildTag(m.UnitComponent, m.ArmyComponent)
	m.DoomguardTag = ecs.BuildTag(m.UnitComponent, m.ArmyComponent, m.DoomguardComponent)

	return m
}

// GetComponentTypeByID retrieves a component of type T from an entity by ID,
// scanning all entities. Returns the zero value if not found, matching
// common.GetComponentTypeByID's no-panic contract.
func GetComponentTypeByID[T any](m *Manager, id ecs.EntityID, component *ecs.Component) (T, bool) {
	var zero T
	for _, result := range m.World.Query(ecs.BuildTag(component)) {
		if result.Entity.GetID() == id {
			if c, ok := result.Entity.GetComponentData(component); ok {
				return c.(T), true
			}
		}
	}
	return zero, false
}

// Unit returns the entity's Unit data (race, energy, position, direction)
// shared by characters and armies.
func (m *Manager) Unit(id ecs.EntityID) (*Unit, bool) {
	return GetComponentTypeByID[*Unit](m, id, m.UnitComponent)
}

// Character returns the entity's Character data, or ok=false if id is not a
// character.
func (m *Manager) Character(id ecs.EntityID) (*Character, bool) {
	return GetComponentTypeByID[*Character](m, id, m.CharacterComponent)
}

// Army returns the entity's Army data, or ok=false if id is not an army.
func (m *Manager) Army(id ecs.EntityID) (*Army, bool) {
	return GetComponentTypeByID[*Army](m, id, m.ArmyComponent)
}

// Doomguard returns the entity's Doomguard data, or ok=false if id is not a
// doomguard.
func (m *Manager) Doomguard(id ecs.EntityID) (*Doomguard, bool) {
	return GetComponentTypeByID[*Doomguard](m, id, m.DoomguardComponent)
}

// AllCharacters returns every character entity ID in roster order.
func (m *Manager) AllCharacters() []ecs.EntityID {
	var ids []ecs.EntityID
	for _, result := range m.World.Query(m.CharacterTag) {
		ids = append(ids, result.Entity.GetID())
	}
	return ids
}

// AllArmies returns every army entity ID that is not a doomguard. This
// includes character-owned warriors/riders armies and guard armies alike —
// callers that need guards specifically should scan locations by
// worldmap.Map.At(x,y).HasGuard() instead (guards are reached through a
// Location's GuardID, not through the army tag alone).
func (m *Manager) AllArmies() []ecs.EntityID {
	var ids []ecs.EntityID
	for _, result := range m.World.Query(m.ArmyTag) {
		if _, isDoom := result.Entity.GetComponentData(m.DoomguardComponent); !isDoom {
			ids = append(ids, result.Entity.GetID())
		}
	}
	return ids
}

// AllDoomguards returns every doomguard entity ID.
func (m *Manager) AllDoomguards() []ecs.EntityID {
	var ids []ecs.EntityID
	for _, result := range m.World.Query(m.DoomguardTag) {
		ids = append(ids, result.Entity.GetID())
	}
	return ids
}
