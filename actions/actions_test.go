package actions

import (
	"testing"

	"midnight/entity"
	"midnight/enums"
	"midnight/randsrc"
	"midnight/worldmap"
)

func freshController(t *testing.T) (*Controller, *entity.World, *worldmap.Map) {
	t.Helper()
	m := worldmap.NewMap()
	w := entity.NewWorld(m)
	ctrl := NewController(w, m, randsrc.NewCryptoSource())
	return ctrl, w, m
}

func TestWalkForwardSoutheastDiagonalOnHorseDrainIsThree(t *testing.T) {
	ctrl, w, m := freshController(t)
	luxorID := w.CharacterByRosterID[0]
	char, _ := w.Character(luxorID)
	unit, _ := w.Unit(luxorID)

	unit.Direction = enums.Southeast
	char.OnHorse = true
	char.Time = int(enums.Dawn)

	dest := m.InFront(m.AtPos(unit.Position), enums.Southeast)
	dest.Feature = enums.Plains
	dest.Object = enums.Nothing
	startEnergy := unit.Energy

	if !ctrl.CanWalkForward(luxorID) {
		t.Fatal("expected Luxor to be able to walk forward from dawn")
	}
	if err := ctrl.WalkForward(luxorID); err != nil {
		t.Fatalf("WalkForward: %v", err)
	}

	if unit.Energy != startEnergy-3 {
		t.Errorf("energy after diagonal plains walk on horse = %d, want %d", unit.Energy, startEnergy-3)
	}
}

func TestFightWolvesWithWolfslayerKillsOutright(t *testing.T) {
	ctrl, w, m := freshController(t)
	luxorID := w.CharacterByRosterID[0]
	char, _ := w.Character(luxorID)
	unit, _ := w.Unit(luxorID)
	loc := m.AtPos(unit.Position)

	for len(loc.Armies) > 0 {
		loc.RemoveArmy(loc.Armies[0])
	}
	loc.Object = enums.Wolves
	char.CarriedObject = enums.Wolfslayer
	char.Life = 200

	if !ctrl.CanFight(luxorID) {
		t.Fatal("expected to be able to fight wolves")
	}
	if err := ctrl.Fight(luxorID); err != nil {
		t.Fatalf("Fight: %v", err)
	}

	if char.Killed != enums.Wolves {
		t.Errorf("Killed = %v, want Wolves", char.Killed)
	}
	if loc.Object != enums.Nothing {
		t.Errorf("tile object = %v, want Nothing after an outright kill", loc.Object)
	}
	if char.Life != 200 {
		t.Errorf("life changed to %d despite an outright kill (no maybe_lose roll)", char.Life)
	}
}

func TestMorkinPicksUpIceCrown(t *testing.T) {
	ctrl, w, m := freshController(t)
	morkinID := w.CharacterByRosterID[1]
	char, _ := w.Character(morkinID)
	unit, _ := w.Unit(morkinID)
	loc := m.AtPos(unit.Position)

	loc.Object = enums.IceCrown
	char.CarriedObject = enums.Nothing

	found, err := ctrl.Seek(morkinID)
	if err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if found != enums.IceCrown {
		t.Errorf("found = %v, want IceCrown", found)
	}
	if char.CarriedObject != enums.IceCrown {
		t.Errorf("Morkin carried = %v, want IceCrown", char.CarriedObject)
	}
	if loc.Object != enums.Nothing {
		t.Errorf("tile object = %v, want Nothing (Morkin carried nothing before)", loc.Object)
	}
}

func TestOnlyMorkinCanPickUpIceCrown(t *testing.T) {
	ctrl, w, m := freshController(t)
	luxorID := w.CharacterByRosterID[0]
	char, _ := w.Character(luxorID)
	unit, _ := w.Unit(luxorID)
	loc := m.AtPos(unit.Position)

	loc.Object = enums.IceCrown
	char.CarriedObject = enums.Nothing

	found, err := ctrl.Seek(luxorID)
	if err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if found != enums.IceCrown {
		t.Errorf("found = %v, want IceCrown (still reported even though Luxor cannot take it)", found)
	}
	if char.CarriedObject != enums.Nothing {
		t.Errorf("Luxor should not be able to carry the Ice Crown, got %v", char.CarriedObject)
	}
	if loc.Object != enums.IceCrown {
		t.Errorf("tile object should be untouched, got %v", loc.Object)
	}
}

func TestDropObjectThenSeekRestoresCarriedObject(t *testing.T) {
	ctrl, w, m := freshController(t)
	luxorID := w.CharacterByRosterID[0]
	char, _ := w.Character(luxorID)
	unit, _ := w.Unit(luxorID)
	loc := m.AtPos(unit.Position)

	loc.Object = enums.Nothing
	char.CarriedObject = enums.Wolfslayer

	if err := ctrl.DropObject(luxorID); err != nil {
		t.Fatalf("DropObject: %v", err)
	}
	if char.CarriedObject != enums.Nothing || loc.Object != enums.Wolfslayer {
		t.Fatalf("after drop: carried=%v tile=%v", char.CarriedObject, loc.Object)
	}

	if _, err := ctrl.Seek(luxorID); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if char.CarriedObject != enums.Wolfslayer {
		t.Errorf("carried object after re-seeking = %v, want Wolfslayer restored", char.CarriedObject)
	}
}

func TestHideRequiresNoSoldiers(t *testing.T) {
	ctrl, w, _ := freshController(t)
	luxorID := w.CharacterByRosterID[0]
	char, _ := w.Character(luxorID)
	warriors, _ := w.Army(char.Warriors)
	warriors.HowMany = 50

	if ctrl.CanHide(luxorID) {
		t.Error("should not be able to hide while carrying soldiers")
	}

	warriors.HowMany = 0
	if !ctrl.CanHide(luxorID) {
		t.Error("should be able to hide once soldiers are gone")
	}
	if err := ctrl.Hide(luxorID); err != nil {
		t.Fatalf("Hide: %v", err)
	}
	if !char.Hidden {
		t.Error("Hidden flag not set after Hide")
	}
}

func TestMorkinCannotHide(t *testing.T) {
	ctrl, w, _ := freshController(t)
	morkinID := w.CharacterByRosterID[1]
	if ctrl.CanHide(morkinID) {
		t.Error("Morkin should never be able to hide")
	}
}
