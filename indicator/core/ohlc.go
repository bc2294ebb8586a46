package core

import (
	"fmt"
	"math"
	"strings"
)

// Source selects which scalar a single-series indicator reads from a bar.
// The set is closed; parsing happens once at configuration time so the
// per-bar path never touches strings.
type Source string

const (
	SourceClose  Source = "close"
	SourceOpen   Source = "open"
	SourceHigh   Source = "high"
	SourceLow    Source = "low"
	SourceHL2    Source = "hl2"
	SourceHLC3   Source = "hlc3"
	SourceOHLC4  Source = "ohlc4"
	SourceVolume Source = "volume"
)

// ParseSource converts a textual source name into a Source tag.
func ParseSource(s string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourceClose:
		return SourceClose, nil
	case SourceOpen:
		return SourceOpen, nil
	case SourceHigh:
		return SourceHigh, nil
	case SourceLow:
		return SourceLow, nil
	case SourceHL2:
		return SourceHL2, nil
	case SourceHLC3:
		return SourceHLC3, nil
	case SourceOHLC4:
		return SourceOHLC4, nil
	case SourceVolume:
		return SourceVolume, nil
	default:
		return "", fmt.Errorf("unknown source %q", s)
	}
}

// OHLC is the bar contract the core consumes. Implementations must be
// immutable once observed; the library never mutates a bar.
type OHLC interface {
	Open() float64
	High() float64
	Low() float64
	Close() float64
	Volume() float64

	// TR returns the true range of this bar relative to the previous one:
	// max(high-low, |high-prevClose|, |low-prevClose|).
	TR(prev OHLC) float64

	// Source returns the scalar selected by the given source tag.
	Source(src Source) float64
}

// Candle is the plain OHLCV bar used by hosts and tests.
type Candle struct {
	OpenPrice  float64
	HighPrice  float64
	LowPrice   float64
	ClosePrice float64
	Vol        float64
}

func (c Candle) Open() float64   { return c.OpenPrice }
func (c Candle) High() float64   { return c.HighPrice }
func (c Candle) Low() float64    { return c.LowPrice }
func (c Candle) Close() float64  { return c.ClosePrice }
func (c Candle) Volume() float64 { return c.Vol }

// TR computes the true range against the previous bar.
func (c Candle) TR(prev OHLC) float64 {
	highLow := c.HighPrice - c.LowPrice
	highPrevClose := math.Abs(c.HighPrice - prev.Close())
	lowPrevClose := math.Abs(c.LowPrice - prev.Close())
	return math.Max(highLow, math.Max(highPrevClose, lowPrevClose))
}

// Source returns the scalar selected by `src`. Unknown tags fall back to the
// close price; tags are validated at configuration time, so this branch is
// unreachable for configs built through ParseSource.
func (c Candle) Source(src Source) float64 {
	switch src {
	case SourceOpen:
		return c.OpenPrice
	case SourceHigh:
		return c.HighPrice
	case SourceLow:
		return c.LowPrice
	case SourceHL2:
		return (c.HighPrice + c.LowPrice) / 2
	case SourceHLC3:
		return (c.HighPrice + c.LowPrice + c.ClosePrice) / 3
	case SourceOHLC4:
		return (c.OpenPrice + c.HighPrice + c.LowPrice + c.ClosePrice) / 4
	case SourceVolume:
		return c.Vol
	default:
		return c.ClosePrice
	}
}
