package entity

import (
	"testing"

	"midnight/enums"
	"midnight/worldmap"
)

func TestNewWorldPlacesAllCharacters(t *testing.T) {
	m := worldmap.NewMap()
	w := NewWorld(m)

	if got := len(w.AllCharacters()); got != len(CharacterRoster) {
		t.Errorf("character count = %d, want %d", got, len(CharacterRoster))
	}

	luxorID, ok := w.CharacterByRosterID[0]
	if !ok {
		t.Fatal("Luxor (roster id 0) not found")
	}
	luxor, ok := w.Character(luxorID)
	if !ok {
		t.Fatal("Luxor character component missing")
	}
	if luxor.CarriedObject != enums.MoonRing {
		t.Errorf("Luxor should start carrying the Moon Ring, got %v", luxor.CarriedObject)
	}

	morkinID := w.CharacterByRosterID[1]
	morkin, _ := w.Character(morkinID)
	if !morkin.IsMorkin() {
		t.Errorf("roster id 1 should be Morkin")
	}
}

func TestNewWorldPlacesGuardsOnKeeps(t *testing.T) {
	m := worldmap.NewMap()
	w := NewWorld(m)

	count := 0
	for _, seed := range GuardRoster {
		loc := m.At(seed.X, seed.Y)
		if !loc.HasGuard() {
			t.Errorf("expected guard at (%d,%d)", seed.X, seed.Y)
			continue
		}
		army, ok := w.Army(loc.GuardID)
		if !ok {
			t.Errorf("guard at (%d,%d) has no Army component", seed.X, seed.Y)
			continue
		}
		if army.HowMany != seed.HowMany {
			t.Errorf("guard at (%d,%d) how_many = %d, want %d", seed.X, seed.Y, army.HowMany, seed.HowMany)
		}
		count++
	}
	if count != len(GuardRoster) {
		t.Errorf("placed %d guards, want %d", count, len(GuardRoster))
	}
}

func TestNewWorldDoomguardsAreFoul(t *testing.T) {
	m := worldmap.NewMap()
	w := NewWorld(m)

	ids := w.AllDoomguards()
	if len(ids) != len(DoomguardRoster) {
		t.Fatalf("doomguard count = %d, want %d", len(ids), len(DoomguardRoster))
	}
	for _, id := range ids {
		unit, ok := w.Unit(id)
		if !ok || unit.Race != enums.Foul {
			t.Errorf("doomguard %v should be foul-race", id)
		}
	}
}

func TestFollowDoomguardsTargetCharacters(t *testing.T) {
	m := worldmap.NewMap()
	w := NewWorld(m)

	for i, seed := range DoomguardRoster {
		if seed.Orders != enums.Follow {
			continue
		}
		id := w.DoomguardByIndex[i]
		doom, ok := w.Doomguard(id)
		if !ok {
			t.Fatalf("doomguard %d missing component", i)
		}
		if doom.TargetKind != DoomguardTargetCharacter {
			t.Errorf("doomguard %d with FOLLOW orders should target a character", i)
		}
	}
}
