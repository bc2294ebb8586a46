package core

import "errors"

// ReverseSignal confirms local pivots over an asymmetric lookback. The
// candidate under inspection sits `right` steps in the past; it is a
// confirmed maximum (Sell) when strictly above every one of the `left`
// values before it and the `right` values after it, and a confirmed minimum
// (Buy) in the mirrored case. Confirmation is therefore delayed by exactly
// `right` observations; that lag is inherent to the definition, not
// avoidable.
type ReverseSignal struct {
	window *Window[float64]
	right  int
}

// NewReverseSignal creates a pivot detector spanning `left` bars before the
// candidate and `right` bars after it, seeded with `seed`.
func NewReverseSignal(left, right int, seed float64) (*ReverseSignal, error) {
	if left < 1 || right < 1 {
		return nil, errors.New("reverse signal spans must be at least 1")
	}
	w, err := NewWindow(left+right+1, seed)
	if err != nil {
		return nil, err
	}
	return &ReverseSignal{window: w, right: right}, nil
}

// Next consumes one value and reports whether the value `right` steps back
// is now a confirmed local extremum. The scan walks the ring in place, so
// the per-bar path allocates nothing.
func (r *ReverseSignal) Next(value float64) Action {
	r.window.Push(value)

	// After Push the cursor sits on the oldest element; chronological
	// position i lives at items[(cursor+i) % n].
	items := r.window.items
	n := len(items)
	candPos := n - 1 - r.right
	candidate := items[(r.window.cursor+candPos)%n]

	isMax, isMin := true, true
	for i := 0; i < n; i++ {
		if i == candPos {
			continue
		}
		v := items[(r.window.cursor+i)%n]
		if v >= candidate {
			isMax = false
		}
		if v <= candidate {
			isMin = false
		}
		if !isMax && !isMin {
			return None
		}
	}
	if isMax {
		return Sell
	}
	if isMin {
		return Buy
	}
	return None
}
