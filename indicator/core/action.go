package core

import "math"

// Action is a single signal channel value, always inside [-1, +1]. Discrete
// signals use the Buy/Sell/None constants; continuous signals carry the raw
// ratio, clamped.
type Action float64

const (
	Buy  Action = 1
	None Action = 0
	Sell Action = -1
)

// ActionFromRatio converts a continuous signal value into an Action, clamping
// it into [-1, +1]. NaN maps to None so a degenerate formula upstream can
// never leak into a Result.
func ActionFromRatio(v float64) Action {
	if math.IsNaN(v) {
		return None
	}
	if v > 1 {
		return Buy
	}
	if v < -1 {
		return Sell
	}
	return Action(v)
}

// ActionFromSign maps a comparison outcome (negative, zero, positive) onto a
// discrete Action.
func ActionFromSign(sign int) Action {
	switch {
	case sign > 0:
		return Buy
	case sign < 0:
		return Sell
	default:
		return None
	}
}

// IsBuy reports whether the action is a strictly positive signal.
func (a Action) IsBuy() bool { return a > 0 }

// IsSell reports whether the action is a strictly negative signal.
func (a Action) IsSell() bool { return a < 0 }

// IsNone reports whether no signal is present.
func (a Action) IsNone() bool { return a == 0 }
