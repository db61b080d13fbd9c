package coords

import (
	"testing"

	"midnight/enums"
)

func TestManhattanDistance(t *testing.T) {
	a := NewPosition(12, 40)
	b := NewPosition(45, 59)
	if got := a.ManhattanDistance(b); got != 33+19 {
		t.Errorf("ManhattanDistance = %d, want %d", got, 33+19)
	}
}

func TestDirectionToPrefersDiagonal(t *testing.T) {
	a := NewPosition(10, 10)
	b := NewPosition(12, 12)
	if got := a.DirectionTo(b); got != enums.Southeast {
		t.Errorf("DirectionTo = %v, want Southeast", got)
	}
}

func TestDirectionToTieFallsBackToCardinal(t *testing.T) {
	a := NewPosition(10, 10)
	east := NewPosition(15, 10)
	if got := a.DirectionTo(east); got != enums.East {
		t.Errorf("DirectionTo (equal y) = %v, want East", got)
	}
	south := NewPosition(10, 15)
	if got := a.DirectionTo(south); got != enums.South {
		t.Errorf("DirectionTo (equal x) = %v, want South", got)
	}
}

func TestStepMatchesDirectionDelta(t *testing.T) {
	p := NewPosition(5, 5)
	got := p.Step(enums.Northwest)
	want := NewPosition(4, 4)
	if !got.IsEqual(want) {
		t.Errorf("Step(Northwest) = %+v, want %+v", got, want)
	}
}
