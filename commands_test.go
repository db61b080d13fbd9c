package midnight

import (
	"testing"

	"midnight/enums"
	"midnight/randsrc"
)

func TestCommandsWalksLuxorForward(t *testing.T) {
	w := New(randsrc.NewCryptoSource())
	cmds := w.Commands()

	luxorID := w.Entities.CharacterByRosterID[0]
	char, _ := w.Entities.Character(luxorID)
	unit, _ := w.Entities.Unit(luxorID)
	char.Time = 16 // dawn, so leaving is allowed regardless of tile occupancy
	unit.Direction = enums.North

	dest := w.Map.InFront(w.Map.AtPos(unit.Position), unit.Direction)
	dest.Feature = enums.Plains
	dest.Object = enums.Nothing
	dest.GuardID = 0
	dest.Armies = nil

	startEnergy := unit.Energy
	if !cmds.CanWalkForward(luxorID) {
		t.Fatal("expected Luxor to be able to walk forward at dawn")
	}
	if err := cmds.WalkForward(luxorID); err != nil {
		t.Fatalf("WalkForward: %v", err)
	}
	if unit.Energy >= startEnergy {
		t.Errorf("energy after walking = %d, want less than %d", unit.Energy, startEnergy)
	}
}

func TestSwitchCharacterRequiresControllable(t *testing.T) {
	w := New(randsrc.NewCryptoSource())

	someOtherID := w.Entities.CharacterByRosterID[5]
	if err := w.SwitchCharacter(someOtherID); err == nil {
		t.Fatal("expected switch_character to an un-recruited, moon-ring-less character to fail")
	}
	if w.Current != w.Entities.CharacterByRosterID[0] {
		t.Errorf("Current changed on a failed switch_character")
	}

	morkinID := w.Entities.CharacterByRosterID[1]
	if err := w.SwitchCharacter(morkinID); err != nil {
		t.Fatalf("SwitchCharacter(Morkin): %v", err)
	}
	if w.Current != morkinID {
		t.Errorf("Current = %v, want Morkin", w.Current)
	}
}
