package core

// IndicatorResult is the fixed-arity emission produced for every bar: a list
// of numeric values and a list of signals. Downstream consumers index by
// position, so the arities must match the owning configuration's Size() on
// every emission.
type IndicatorResult struct {
	values  []float64
	signals []Action
}

// NewIndicatorResult copies both lists so later mutation of the arguments
// cannot alter an already-emitted result.
func NewIndicatorResult(values []float64, signals []Action) IndicatorResult {
	v := make([]float64, len(values))
	copy(v, values)
	s := make([]Action, len(signals))
	copy(s, signals)
	return IndicatorResult{values: v, signals: s}
}

// Value returns the numeric value at position i.
func (r IndicatorResult) Value(i int) float64 {
	return r.values[i]
}

// Signal returns the signal at position i.
func (r IndicatorResult) Signal(i int) Action {
	return r.signals[i]
}

// Values returns a copy of the numeric value list.
func (r IndicatorResult) Values() []float64 {
	out := make([]float64, len(r.values))
	copy(out, r.values)
	return out
}

// Signals returns a copy of the signal list.
func (r IndicatorResult) Signals() []Action {
	out := make([]Action, len(r.signals))
	copy(out, r.signals)
	return out
}

// Size returns the (value, signal) arities of the result.
func (r IndicatorResult) Size() (int, int) {
	return len(r.values), len(r.signals)
}
