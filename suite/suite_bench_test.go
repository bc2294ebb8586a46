package suite

import (
	"math"
	"testing"

	"github.com/jzajpt/yata/indicator/core"
)

// ---------------------------------------------------------------------------
// Benchmark Feed() – one bar through every registered indicator.
// ---------------------------------------------------------------------------
func BenchmarkIndicatorSuite_Feed(b *testing.B) {
	s := NewIndicatorSuite(nil)

	candles := make([]core.Candle, b.N)
	for i := range candles {
		close := 100 + 20*math.Sin(float64(i)*0.1) + float64(i)*0.05
		candles[i] = core.Candle{
			OpenPrice:  close - 0.5,
			HighPrice:  close + 1,
			LowPrice:   close - 1,
			ClosePrice: close,
			Vol:        1000,
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Feed(candles[i])
	}
}
