package worldmap

import (
	"testing"

	"midnight/enums"
)

func TestOutOfBoundsReturnsFrozenWaste(t *testing.T) {
	m := NewMap()
	loc := m.At(-1, 5)
	if !loc.IsFrozenWaste() {
		t.Errorf("At(-1,5) should be frozen waste sentinel")
	}
	loc2 := m.At(Width, 5)
	if !loc2.IsFrozenWaste() {
		t.Errorf("At(Width,5) should be frozen waste sentinel")
	}
}

func TestLandmarksPlaced(t *testing.T) {
	m := NewMap()
	tower := m.AtPos(TowerOfDespair)
	if tower.Feature != enums.Tower {
		t.Errorf("Tower of Despair feature = %v, want Tower", tower.Feature)
	}
	ushgarak := m.AtPos(Ushgarak)
	if ushgarak.Feature != enums.Citadel {
		t.Errorf("Ushgarak feature = %v, want Citadel", ushgarak.Feature)
	}
	xajorkith := m.AtPos(Xajorkith)
	if xajorkith.Feature != enums.Citadel {
		t.Errorf("Xajorkith feature = %v, want Citadel", xajorkith.Feature)
	}
	lake := m.AtPos(LakeMirrowLoc)
	if lake.Feature != enums.Lake {
		t.Errorf("Lake Mirrow feature = %v, want Lake", lake.Feature)
	}
}

func TestCalcDirectionTieFallsBackToCardinal(t *testing.T) {
	m := NewMap()
	a := m.At(10, 10)
	b := m.At(10, 20)
	if got := m.CalcDirection(a, b); got != enums.South {
		t.Errorf("CalcDirection (equal x) = %v, want South", got)
	}
}

func TestFeatureCyclesPlainsArmy(t *testing.T) {
	loc := newLocation(5, 5, enums.Plains, enums.Nothing, enums.AreaNothing, false, false)
	loc.RefreshFeature(true)
	if loc.Feature != enums.Army {
		t.Errorf("feature after occupying = %v, want Army", loc.Feature)
	}
	loc.RefreshFeature(false)
	if loc.Feature != enums.Plains {
		t.Errorf("feature after vacating = %v, want Plains", loc.Feature)
	}
}

func TestFeatureCyclingLeavesOtherFeaturesAlone(t *testing.T) {
	loc := newLocation(5, 5, enums.Forest, enums.Nothing, enums.AreaNothing, false, false)
	loc.RefreshFeature(true)
	if loc.Feature != enums.Forest {
		t.Errorf("non-plains feature must not cycle, got %v", loc.Feature)
	}
}

func TestRouteGraphSelfLoopAndSuccessor(t *testing.T) {
	m := NewMap()
	node0 := m.At(m.RouteNodeAt(0).X, m.RouteNodeAt(0).Y)
	if m.NextNodeA(node0).X != node0.X || m.NextNodeA(node0).Y != node0.Y {
		t.Errorf("node 0's successor A should be itself")
	}
	b := m.NextNodeB(node0)
	if b.X == node0.X && b.Y == node0.Y {
		t.Errorf("node 0's successor B should differ from node 0")
	}
}
