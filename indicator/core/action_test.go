package core

import (
	"math"
	"testing"
)

func TestActionFromRatio(t *testing.T) {
	cases := []struct {
		in   float64
		want Action
	}{
		{0.5, Action(0.5)},
		{-0.25, Action(-0.25)},
		{3.7, Buy},
		{-42, Sell},
		{0, None},
	}
	for _, tc := range cases {
		if got := ActionFromRatio(tc.in); got != tc.want {
			t.Errorf("ActionFromRatio(%f): expected %v, got %v", tc.in, tc.want, got)
		}
	}
	if got := ActionFromRatio(math.NaN()); got != None {
		t.Errorf("NaN must map to None, got %v", got)
	}
}

func TestActionFromSign(t *testing.T) {
	if got := ActionFromSign(3); got != Buy {
		t.Errorf("expected Buy, got %v", got)
	}
	if got := ActionFromSign(-1); got != Sell {
		t.Errorf("expected Sell, got %v", got)
	}
	if got := ActionFromSign(0); got != None {
		t.Errorf("expected None, got %v", got)
	}
}

func TestActionPredicates(t *testing.T) {
	if !Buy.IsBuy() || Buy.IsSell() || Buy.IsNone() {
		t.Error("Buy predicates wrong")
	}
	if !Sell.IsSell() || Sell.IsBuy() || Sell.IsNone() {
		t.Error("Sell predicates wrong")
	}
	if !None.IsNone() || None.IsBuy() || None.IsSell() {
		t.Error("None predicates wrong")
	}
	if !Action(0.3).IsBuy() {
		t.Error("fractional positive action should read as buy-side")
	}
}
