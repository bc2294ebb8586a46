package core

import (
	"math"
	"testing"
)

func TestCandle_TrueRange(t *testing.T) {
	prev := Candle{HighPrice: 105, LowPrice: 95, ClosePrice: 100}

	// Plain intra-bar range dominates.
	c := Candle{HighPrice: 104, LowPrice: 96, ClosePrice: 101}
	if got := c.TR(prev); math.Abs(got-8) > 1e-9 {
		t.Errorf("expected TR 8, got %f", got)
	}

	// Gap up: |high - prevClose| dominates.
	c = Candle{HighPrice: 115, LowPrice: 112, ClosePrice: 114}
	if got := c.TR(prev); math.Abs(got-15) > 1e-9 {
		t.Errorf("expected TR 15, got %f", got)
	}

	// Gap down: |low - prevClose| dominates.
	c = Candle{HighPrice: 90, LowPrice: 85, ClosePrice: 86}
	if got := c.TR(prev); math.Abs(got-15) > 1e-9 {
		t.Errorf("expected TR 15, got %f", got)
	}
}

func TestCandle_Source(t *testing.T) {
	c := Candle{OpenPrice: 10, HighPrice: 20, LowPrice: 4, ClosePrice: 14, Vol: 1000}
	cases := []struct {
		src  Source
		want float64
	}{
		{SourceClose, 14},
		{SourceOpen, 10},
		{SourceHigh, 20},
		{SourceLow, 4},
		{SourceHL2, 12},
		{SourceHLC3, (20 + 4 + 14) / 3.0},
		{SourceOHLC4, 12},
		{SourceVolume, 1000},
	}
	for _, tc := range cases {
		if got := c.Source(tc.src); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Source(%s): expected %f, got %f", tc.src, tc.want, got)
		}
	}
}

func TestParseSource(t *testing.T) {
	src, err := ParseSource("  HL2 ")
	if err != nil {
		t.Fatalf("ParseSource failed: %v", err)
	}
	if src != SourceHL2 {
		t.Errorf("expected hl2, got %s", src)
	}
	if _, err := ParseSource("median"); err == nil {
		t.Error("expected error for unknown source")
	}
}
