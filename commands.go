package midnight

import (
	"github.com/bytearena/ecs"

	"midnight/actions"
)

// Commands returns the day-phase command surface bound to this world's
// entities, map, and random source. A renderer issues exactly one of
// these at a time against the currently selected controllable character;
// every mutating method either applies or returns
// actions.ErrActionUnavailable, leaving world state unchanged on failure.
func (w *World) Commands() *actions.Controller {
	ctrl := actions.NewController(w.Entities, w.Map, w.Rng)
	ctrl.IceFear = w.IceFearAt
	return ctrl
}

// SwitchCharacter reselects the player's currently controlled character.
// It fails (leaving Current unchanged) unless Controllable(id) holds:
// Luxor and Morkin always, any other character only once recruited while
// the Moon Ring is under free control.
func (w *World) SwitchCharacter(id ecs.EntityID) error {
	if !w.Controllable(id) {
		return actions.ErrActionUnavailable
	}
	w.Current = id
	return nil
}
