package core

// RateOfChange emits the fractional change of the input against the value
// `period` steps back. Until `period` genuine inputs have been seen the
// comparison value is the seed. Policy: the change is relative
// ((now-then)/then); a zero comparison value falls back to a change of 0
// instead of producing Inf/NaN.
type RateOfChange struct {
	window *Window[float64]
}

// NewRateOfChange creates a RateOfChange with the given lag and seed.
func NewRateOfChange(period int, seed float64) (*RateOfChange, error) {
	w, err := NewWindow(period, seed)
	if err != nil {
		return nil, err
	}
	return &RateOfChange{window: w}, nil
}

// Next consumes one value and returns its fractional change against the
// value `period` steps back.
func (r *RateOfChange) Next(value float64) float64 {
	past := r.window.Push(value)
	if past == 0 {
		return 0
	}
	return (value - past) / past
}
