package entity

import (
	"github.com/bytearena/ecs"

	"midnight/config"
	"midnight/coords"
	"midnight/enums"
)

// Unit is the data shared by every Army and every Character: a race, a
// clamped energy scalar, a position, and a last-battle kill count.
type Unit struct {
	Race        enums.Race
	Energy      int
	Position    coords.Position
	Direction   enums.Direction
	EnemyKilled int
}

// clampEnergy keeps energy within the 0..127 range every mutation must
// respect.
func clampEnergy(e int) int {
	if e < 0 {
		return 0
	}
	if e > 127 {
		return 127
	}
	return e
}

// SetEnergy clamps and stores e.
func (u *Unit) SetEnergy(e int) { u.Energy = clampEnergy(e) }

// AddEnergy adds delta (which may be negative) and clamps.
func (u *Unit) AddEnergy(delta int) { u.SetEnergy(u.Energy + delta) }

// Condition is the derived 8-rung ladder reading of energy.
func (u *Unit) Condition() enums.Condition {
	return enums.ConditionFromIndex(u.Energy >> 4)
}

// Army is a Unit plus headcount, type, and per-battle scratch state.
type Army struct {
	Kind          enums.UnitKind
	HowMany       int
	Casualties    int
	SuccessChance int
}

// IsDrained reports whether the army has no soldiers left.
func (a *Army) IsDrained() bool { return a.HowMany <= 0 }

// IncrementArmyEnergy applies the army recovery bonus (riders +6, warriors
// +4) plus the caller-supplied increment, clamped via unit.
func IncrementArmyEnergy(unit *Unit, army *Army, increment int) {
	bonus := 4
	if army.Kind == enums.Riders {
		bonus = 6
	}
	unit.AddEnergy(bonus + increment)
}

// Character is a Unit plus the full day-phase character state.
type Character struct {
	ID             int
	Name           string
	Title          string
	Life           int
	Strength       int
	CourageBase    int
	RecruitingKey  int
	RecruitedByKey int
	CarriedObject  enums.Object
	Time           int
	Warriors       ecs.EntityID
	Riders         ecs.EntityID
	OnHorse        bool
	Recruited      bool
	Hidden         bool
	BattleLocation *coords.Position

	Found  enums.Object
	Killed enums.Object
}

// IsAlive reports whether the character can still act.
func (c *Character) IsAlive() bool { return c.Life > 0 }

// IsMorkin reports whether this is the one character permitted to pick up
// the Ice Crown and the Moon Ring, cannot hide, and is exempt from some
// enemy-occupied-tile movement restrictions.
func (c *Character) IsMorkin() bool { return c.ID == 1 }

// IsFarflame reports whether this character's movement cost is always 1
// regardless of terrain.
func (c *Character) IsFarflame() bool { return c.ID == 31 }

// Courage is the derived ladder reading: courage_base adjusted down by
// the tile's ice fear, divided into 8 rungs.
func (c *Character) Courage(iceFear int) enums.Courage {
	idx := (c.CourageBase - iceFear/7) / 8
	return enums.CourageFromIndex(idx)
}

// MaxMoveCount is the per-night doomguard move budget.
const MaxMoveCount = config.MaxDoomguardMoveCount

type DoomguardTargetKind int

const (
	DoomguardTargetCharacter DoomguardTargetKind = iota
	DoomguardTargetLocation
)

// Doomguard is a foul-race Army plus movement orders and a move budget.
type Doomguard struct {
	ID         int
	Orders     enums.Orders
	TargetKind DoomguardTargetKind
	// TargetCharacter is valid when TargetKind is DoomguardTargetCharacter
	// (FOLLOW orders).
	TargetCharacter ecs.EntityID
	// TargetPos is valid when TargetKind is DoomguardTargetLocation (GOTO,
	// ROUTE orders store the target node's coordinate here).
	TargetPos coords.Position
	MoveCount int
}

// ResetForNight zeroes the per-night move budget.
func (d *Doomguard) ResetForNight() { d.MoveCount = 0 }

// Exhausted reports whether the doomguard has spent its move budget.
func (d *Doomguard) Exhausted() bool { return d.MoveCount >= MaxMoveCount }
