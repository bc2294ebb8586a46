package core

import "testing"

func TestCross_FirstCallIsNone(t *testing.T) {
	var c Cross
	if got := c.Next(5, 1); got != None {
		t.Fatalf("first call must report no cross, got %v", got)
	}
}

func TestCross_AboveAndBelow(t *testing.T) {
	var c Cross
	if got := c.Next(1, 2); got != None {
		t.Errorf("expected None, got %v", got)
	}
	if got := c.Next(2, 1); got != Buy {
		t.Errorf("expected Buy on cross above, got %v", got)
	}
	if got := c.Next(3, 1); got != None {
		t.Errorf("staying above is not a cross, got %v", got)
	}
	if got := c.Next(0, 1); got != Sell {
		t.Errorf("expected Sell on cross below, got %v", got)
	}
}

func TestCross_NoChangeNoCross(t *testing.T) {
	var c Cross
	if got := c.Next(1, 2); got != None {
		t.Errorf("expected None, got %v", got)
	}
	if got := c.Next(1, 2); got != None {
		t.Errorf("expected None on identical pair, got %v", got)
	}
}

func TestCross_TouchThenCross(t *testing.T) {
	var c Cross
	c.Next(1, 2)
	// Touching the line counts as part of the crossing move.
	if got := c.Next(2, 2); got != None {
		t.Errorf("expected None on touch, got %v", got)
	}
	if got := c.Next(3, 2); got != Buy {
		t.Errorf("expected Buy after touch, got %v", got)
	}
}
