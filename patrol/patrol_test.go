package patrol

import (
	"testing"

	"midnight/coords"
	"midnight/entity"
	"midnight/enums"
	"midnight/randsrc"
	"midnight/worldmap"
)

func freshWorld(t *testing.T) (*entity.World, *worldmap.Map) {
	t.Helper()
	m := worldmap.NewMap()
	w := entity.NewWorld(m)
	return w, m
}

func TestRouteAdvancesToSuccessorBWhenRandomAlwaysReturnsOne(t *testing.T) {
	w, m := freshWorld(t)

	node0 := m.At(m.RouteNodeAt(0).X, m.RouteNodeAt(0).Y)
	b := m.NextNodeB(node0)
	if b.X == node0.X && b.Y == node0.Y {
		t.Fatal("test fixture requires node 0's successor B to differ from node 0")
	}

	pos := coords.NewPosition(node0.X, node0.Y)
	unit := &entity.Unit{Race: enums.Foul, Energy: 127, Position: pos}
	army := &entity.Army{Kind: enums.Warriors, HowMany: 10}
	doom := &entity.Doomguard{Orders: enums.Route, TargetPos: pos}
	e := w.World.NewEntity().
		AddComponent(w.UnitComponent, unit).
		AddComponent(w.ArmyComponent, army).
		AddComponent(w.DoomguardComponent, doom)
	node0.AddArmy(e.GetID())

	p := New(w, m, randsrc.NewFixedSequenceSource(1))
	p.route(e.GetID(), doom, unit, node0)

	if doom.TargetPos.X == node0.X && doom.TargetPos.Y == node0.Y {
		t.Errorf("target should have advanced off the self-loop node, got %v", doom.TargetPos)
	}
	if doom.TargetPos.X != b.X || doom.TargetPos.Y != b.Y {
		t.Errorf("target = (%d,%d), want successor B (%d,%d)", doom.TargetPos.X, doom.TargetPos.Y, b.X, b.Y)
	}
}

func TestExecuteMoveStopsOnSpecialTile(t *testing.T) {
	w, m := freshWorld(t)

	loc := m.At(10, 10)
	loc.Special = true

	pos := coords.NewPosition(loc.X, loc.Y)
	unit := &entity.Unit{Race: enums.Foul, Energy: 127, Position: pos}
	army := &entity.Army{Kind: enums.Warriors, HowMany: 10}
	doom := &entity.Doomguard{Orders: enums.Wander}
	e := w.World.NewEntity().
		AddComponent(w.UnitComponent, unit).
		AddComponent(w.ArmyComponent, army).
		AddComponent(w.DoomguardComponent, doom)
	loc.AddArmy(e.GetID())

	p := New(w, m, randsrc.NewFixedSequenceSource(0))
	if p.executeMove(e.GetID(), doom) {
		t.Error("execute_move should stop on a special tile")
	}
	if doom.MoveCount != 0 {
		t.Errorf("move_count = %d, want 0 (no move made)", doom.MoveCount)
	}
}

func TestMoveToCostHalvedForRiders(t *testing.T) {
	w, m := freshWorld(t)

	cur := m.At(20, 20)
	dest := m.At(21, 20)
	dest.Feature = enums.Forest

	pos := coords.NewPosition(cur.X, cur.Y)
	unit := &entity.Unit{Race: enums.Foul, Energy: 127, Position: pos}
	army := &entity.Army{Kind: enums.Riders, HowMany: 10}
	doom := &entity.Doomguard{Orders: enums.Wander}
	e := w.World.NewEntity().
		AddComponent(w.UnitComponent, unit).
		AddComponent(w.ArmyComponent, army).
		AddComponent(w.DoomguardComponent, doom)
	cur.AddArmy(e.GetID())

	p := New(w, m, randsrc.NewFixedSequenceSource(0))
	if !p.moveTo(e.GetID(), doom, unit, cur, enums.East) {
		t.Fatal("moveTo should succeed onto an uncrowded forest tile")
	}

	if doom.MoveCount != 4 {
		t.Errorf("move_count = %d, want 4 (forest cost 8, halved for riders)", doom.MoveCount)
	}
	if unit.Position.X != dest.X || unit.Position.Y != dest.Y {
		t.Errorf("doomguard did not relocate to the destination tile")
	}
	if cur.HasArmy(e.GetID()) {
		t.Error("doomguard should be removed from the old tile's army set")
	}
	if !dest.HasArmy(e.GetID()) {
		t.Error("doomguard should be added to the new tile's army set")
	}
}

func TestMoveToRefusesOvercrowdedDestination(t *testing.T) {
	w, m := freshWorld(t)

	cur := m.At(30, 30)
	dest := m.At(31, 30)
	for i := 0; i < 0x20; i++ {
		filler := w.World.NewEntity()
		dest.AddArmy(filler.GetID())
	}

	pos := coords.NewPosition(cur.X, cur.Y)
	unit := &entity.Unit{Race: enums.Foul, Energy: 127, Position: pos}
	army := &entity.Army{Kind: enums.Warriors, HowMany: 10}
	doom := &entity.Doomguard{Orders: enums.Wander}
	e := w.World.NewEntity().
		AddComponent(w.UnitComponent, unit).
		AddComponent(w.ArmyComponent, army).
		AddComponent(w.DoomguardComponent, doom)
	cur.AddArmy(e.GetID())

	p := New(w, m, randsrc.NewFixedSequenceSource(0))
	if p.moveTo(e.GetID(), doom, unit, cur, enums.East) {
		t.Error("moveTo should refuse a destination with more than 0x1f armies")
	}
	if unit.Position.X != cur.X {
		t.Error("doomguard should not have relocated")
	}
}

func TestRunResetsMoveCountAfterExhaustingBudget(t *testing.T) {
	w, m := freshWorld(t)

	cur := m.At(40, 40)
	pos := coords.NewPosition(cur.X, cur.Y)
	unit := &entity.Unit{Race: enums.Foul, Energy: 127, Position: pos}
	army := &entity.Army{Kind: enums.Warriors, HowMany: 10}
	doom := &entity.Doomguard{Orders: enums.Wander}
	e := w.World.NewEntity().
		AddComponent(w.UnitComponent, unit).
		AddComponent(w.ArmyComponent, army).
		AddComponent(w.DoomguardComponent, doom)
	cur.AddArmy(e.GetID())

	p := New(w, m, randsrc.NewFixedSequenceSource(0, 0, 0))
	p.Run(e.GetID())

	if doom.MoveCount != 0 {
		t.Errorf("move_count after Run = %d, want reset to 0", doom.MoveCount)
	}
}
