package core

import (
	"errors"
	"fmt"
)

// MethodType names one of the supported incremental smoothing recurrences.
// The set is closed: a tag is resolved to an implementation exactly once, at
// configuration time, so the per-bar path is a plain virtual call with no
// string handling.
type MethodType string

const (
	SMAMethod  MethodType = "SMA"
	EMAMethod  MethodType = "EMA"
	DEMAMethod MethodType = "DEMA"
	TEMAMethod MethodType = "TEMA"
	RMAMethod  MethodType = "RMA"
	WMAMethod  MethodType = "WMA"
)

// ParseMethodType converts a textual tag into a MethodType.
func ParseMethodType(s string) (MethodType, error) {
	switch MethodType(s) {
	case SMAMethod, EMAMethod, DEMAMethod, TEMAMethod, RMAMethod, WMAMethod:
		return MethodType(s), nil
	default:
		return "", fmt.Errorf("unknown method type %q", s)
	}
}

// Method is one incremental smoothing strategy. Next consumes one scalar and
// returns the smoothed value; the output depends only on the inputs seen so
// far and the declared period, and every update is O(1).
type Method interface {
	Next(value float64) float64
}

// NewMethod builds the smoothing method named by `typ`, seeded so that
// feeding the seed as a constant input returns the seed at every step.
// Unknown tags and periods below 1 are construction errors, never runtime
// ones.
func NewMethod(typ MethodType, period int, seed float64) (Method, error) {
	if period < 1 {
		return nil, errors.New("method period must be at least 1")
	}
	switch typ {
	case SMAMethod:
		return newSMA(period, seed), nil
	case EMAMethod:
		return newEMA(2/float64(period+1), seed), nil
	case RMAMethod:
		// Wilder's smoothing: same recurrence as EMA but alpha = 1/period.
		return newEMA(1/float64(period), seed), nil
	case DEMAMethod:
		return newDEMA(period, seed), nil
	case TEMAMethod:
		return newTEMA(period, seed), nil
	case WMAMethod:
		return newWMA(period, seed), nil
	default:
		return nil, fmt.Errorf("unknown method type %q", typ)
	}
}

// sma keeps a running sum over a seeded window: add the new value, subtract
// the evicted one.
type sma struct {
	window *Window[float64]
	sum    float64
	period float64
}

func newSMA(period int, seed float64) *sma {
	w, _ := NewWindow(period, seed)
	return &sma{
		window: w,
		sum:    seed * float64(period),
		period: float64(period),
	}
}

func (s *sma) Next(value float64) float64 {
	s.sum += value - s.window.Push(value)
	return s.sum / s.period
}

// ema covers both the standard exponential recurrence (alpha = 2/(period+1))
// and Wilder's variant (alpha = 1/period). The two conventions produce
// different series for the same period and must never be conflated.
type ema struct {
	alpha float64
	prev  float64
}

func newEMA(alpha, seed float64) *ema {
	return &ema{alpha: alpha, prev: seed}
}

func (e *ema) Next(value float64) float64 {
	e.prev += e.alpha * (value - e.prev)
	return e.prev
}

type dema struct {
	ema1 *ema
	ema2 *ema
}

func newDEMA(period int, seed float64) *dema {
	alpha := 2 / float64(period+1)
	return &dema{ema1: newEMA(alpha, seed), ema2: newEMA(alpha, seed)}
}

func (d *dema) Next(value float64) float64 {
	e1 := d.ema1.Next(value)
	e2 := d.ema2.Next(e1)
	return 2*e1 - e2
}

type tema struct {
	ema1 *ema
	ema2 *ema
	ema3 *ema
}

func newTEMA(period int, seed float64) *tema {
	alpha := 2 / float64(period+1)
	return &tema{
		ema1: newEMA(alpha, seed),
		ema2: newEMA(alpha, seed),
		ema3: newEMA(alpha, seed),
	}
}

func (t *tema) Next(value float64) float64 {
	e1 := t.ema1.Next(value)
	e2 := t.ema2.Next(e1)
	e3 := t.ema3.Next(e2)
	return 3*e1 - 3*e2 + e3
}

// wma maintains the linearly weighted sum incrementally. Shifting the window
// by one bar lowers every kept value's weight by one, which equals
// subtracting the plain sum; the newest value then enters with the highest
// weight. Output is identical to the direct weighted-sum definition.
type wma struct {
	window      *Window[float64]
	weighted    float64
	total       float64
	period      float64
	denominator float64
}

func newWMA(period int, seed float64) *wma {
	w, _ := NewWindow(period, seed)
	p := float64(period)
	return &wma{
		window:      w,
		weighted:    seed * p * (p + 1) / 2,
		total:       seed * p,
		period:      p,
		denominator: p * (p + 1) / 2,
	}
}

func (m *wma) Next(value float64) float64 {
	evicted := m.window.Push(value)
	m.weighted += m.period*value - m.total
	m.total += value - evicted
	return m.weighted / m.denominator
}
