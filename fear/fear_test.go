package fear

import (
	"testing"

	"midnight/coords"
	"midnight/worldmap"
)

func TestComputeAtTowerOfDespairGroundZero(t *testing.T) {
	m := worldmap.NewMap()
	loc := m.AtPos(worldmap.TowerOfDespair)

	got := Compute(m, loc, Inputs{
		MorkinAlive:    true,
		MorkinPosition: worldmap.TowerOfDespair,
		LuxorAlive:     false,
	})

	if got != 0x1FF {
		t.Errorf("ice_fear at Tower of Despair = 0x%X, want 0x1FF", got)
	}
}

func TestComputeOneTileSouthOfTowerOfDespair(t *testing.T) {
	m := worldmap.NewMap()
	southPos := coords.NewPosition(worldmap.TowerOfDespair.X, worldmap.TowerOfDespair.Y+1)
	loc := m.AtPos(southPos)

	got := Compute(m, loc, Inputs{
		MorkinAlive:    true,
		MorkinPosition: southPos,
		LuxorAlive:     false,
	})

	if got != 0x1FB {
		t.Errorf("ice_fear one tile south = 0x%X, want 0x1FB", got)
	}
}

func TestComputeMorkinDeadUsesFallbackFear(t *testing.T) {
	m := worldmap.NewMap()
	loc := m.At(0, 0)

	got := Compute(m, loc, Inputs{MorkinAlive: false, LuxorAlive: false})

	want := 0x7F + 0x7F + 0x30
	if got != want {
		t.Errorf("ice_fear with both dead = %d, want %d", got, want)
	}
}

func TestDescribeClampsToLadderBounds(t *testing.T) {
	if d := Describe(0); d.String() == "" {
		t.Error("Describe(0) should produce a non-empty description")
	}
	if d := Describe(10000); int(d) < 0 || int(d) > 7 {
		t.Errorf("Describe(10000) ordinal out of ladder bounds: %d", d)
	}
	if d := Describe(-10000); int(d) < 0 || int(d) > 7 {
		t.Errorf("Describe(-10000) ordinal out of ladder bounds: %d", d)
	}
}
