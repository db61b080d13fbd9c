package enums

import "testing"

func TestTurnRightEightTimesReturnsOriginal(t *testing.T) {
	d := Northeast
	for i := 0; i < 8; i++ {
		d = d.TurnRight()
	}
	if d != Northeast {
		t.Errorf("turn_right x8 = %v, want Northeast", d)
	}
}

func TestTurnLeftEightTimesReturnsOriginal(t *testing.T) {
	d := Southwest
	for i := 0; i < 8; i++ {
		d = d.TurnLeft()
	}
	if d != Southwest {
		t.Errorf("turn_left x8 = %v, want Southwest", d)
	}
}

func TestTurnLeftIsNotTurnRight(t *testing.T) {
	if North.TurnLeft() == North.TurnRight() {
		t.Errorf("turn_left and turn_right must differ for a non-degenerate direction set")
	}
	if North.TurnLeft() != Northwest {
		t.Errorf("North.TurnLeft() = %v, want Northwest", North.TurnLeft())
	}
	if North.TurnRight() != Northeast {
		t.Errorf("North.TurnRight() = %v, want Northeast", North.TurnRight())
	}
}

func TestDirectionFromDeltaDiagonalPreferred(t *testing.T) {
	if got := DirectionFromDelta(1, 1); got != Southeast {
		t.Errorf("DirectionFromDelta(1,1) = %v, want Southeast", got)
	}
	if got := DirectionFromDelta(3, 0); got != East {
		t.Errorf("DirectionFromDelta(3,0) = %v, want East", got)
	}
}

func TestLadderClampsOutOfRange(t *testing.T) {
	if got := ConditionFromIndex(-3); got != UtterlyTired {
		t.Errorf("ConditionFromIndex(-3) = %v, want UtterlyTired", got)
	}
	if got := ConditionFromIndex(99); got != UtterlyInvigorated {
		t.Errorf("ConditionFromIndex(99) = %v, want UtterlyInvigorated", got)
	}
}
