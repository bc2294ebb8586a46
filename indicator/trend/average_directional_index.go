package trend

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jzajpt/yata/indicator/core"
)

// AverageDirectionalIndex measures trend strength from smoothed directional
// movement.
//
// 3 values: ADX, +DI, -DI.
// 2 signals: a discrete ±1 when ADX is above Zone and one DI dominates the
// other, and the continuous difference +DI - -DI.
type AverageDirectionalIndex struct {
	Method1  core.MethodType // smoothing for true range and both DM lines
	DiLength int

	Method2      core.MethodType // smoothing for the ADX line
	AdxSmoothing int

	Period1 int // lookback to the comparison bar
	Zone    float64
}

// DefaultAverageDirectionalIndex returns the conventional RMA/14 setup.
func DefaultAverageDirectionalIndex() AverageDirectionalIndex {
	return AverageDirectionalIndex{
		Method1:      core.RMAMethod,
		DiLength:     14,
		Method2:      core.RMAMethod,
		AdxSmoothing: 14,
		Period1:      1,
		Zone:         0.2,
	}
}

// Validate checks the declared invariants: positive periods, Zone within
// [0, 1], the comparison lookback strictly shorter than both smoothing
// lengths, and smoothing tags from the supported set.
func (cfg AverageDirectionalIndex) Validate() bool {
	if _, err := core.ParseMethodType(string(cfg.Method1)); err != nil {
		return false
	}
	if _, err := core.ParseMethodType(string(cfg.Method2)); err != nil {
		return false
	}
	return cfg.DiLength >= 1 &&
		cfg.AdxSmoothing >= 1 &&
		cfg.Zone >= 0 && cfg.Zone <= 1 &&
		cfg.Period1 >= 1 &&
		cfg.Period1 < cfg.DiLength &&
		cfg.Period1 < cfg.AdxSmoothing
}

// Set parses one named field. Unknown names and unparsable values are
// reported through the returned diagnostic and leave the field unchanged.
func (cfg *AverageDirectionalIndex) Set(name, value string) error {
	switch name {
	case "method1":
		m, err := core.ParseMethodType(value)
		if err != nil {
			return core.InvalidAttributeValueError(name, value, err)
		}
		cfg.Method1 = m
	case "di_length":
		n, err := strconv.Atoi(value)
		if err != nil {
			return core.InvalidAttributeValueError(name, value, err)
		}
		cfg.DiLength = n
	case "method2":
		m, err := core.ParseMethodType(value)
		if err != nil {
			return core.InvalidAttributeValueError(name, value, err)
		}
		cfg.Method2 = m
	case "adx_smoothing":
		n, err := strconv.Atoi(value)
		if err != nil {
			return core.InvalidAttributeValueError(name, value, err)
		}
		cfg.AdxSmoothing = n
	case "period1":
		n, err := strconv.Atoi(value)
		if err != nil {
			return core.InvalidAttributeValueError(name, value, err)
		}
		cfg.Period1 = n
	case "zone":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return core.InvalidAttributeValueError(name, value, err)
		}
		cfg.Zone = f
	default:
		return core.UnknownAttributeError(name)
	}
	return nil
}

// Size declares the fixed (3 values, 2 signals) result shape.
func (cfg AverageDirectionalIndex) Size() (int, int) {
	return 3, 2
}

// Init binds the configuration to the first observed bar. All smoothing
// state is seeded from that bar so the first emission is well-defined.
func (cfg AverageDirectionalIndex) Init(candle core.OHLC) (core.IndicatorInstance, error) {
	if !cfg.Validate() {
		return nil, core.ErrInvalidConfig
	}

	window, err := core.NewWindow[core.OHLC](cfg.Period1, candle)
	if err != nil {
		return nil, fmt.Errorf("failed to create comparison window: %w", err)
	}
	trMA, err := core.NewMethod(cfg.Method1, cfg.DiLength, candle.TR(candle))
	if err != nil {
		return nil, fmt.Errorf("failed to create TR smoothing: %w", err)
	}
	plusDM, err := core.NewMethod(cfg.Method1, cfg.DiLength, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create +DM smoothing: %w", err)
	}
	minusDM, err := core.NewMethod(cfg.Method1, cfg.DiLength, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create -DM smoothing: %w", err)
	}
	adxMA, err := core.NewMethod(cfg.Method2, cfg.AdxSmoothing, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create ADX smoothing: %w", err)
	}

	return &AverageDirectionalIndexInstance{
		cfg:     cfg,
		window:  window,
		trMA:    trMA,
		plusDM:  plusDM,
		minusDM: minusDM,
		adxMA:   adxMA,
	}, nil
}

// AverageDirectionalIndexInstance is the running per-stream state.
type AverageDirectionalIndexInstance struct {
	cfg AverageDirectionalIndex

	window  *core.Window[core.OHLC]
	trMA    core.Method
	plusDM  core.Method
	minusDM core.Method
	adxMA   core.Method
}

// Config returns the bound configuration. The returned value is a copy, so
// mutating it cannot reach into the running instance.
func (inst *AverageDirectionalIndexInstance) Config() core.IndicatorConfig {
	cfg := inst.cfg
	return &cfg
}

// dirMov computes the smoothed directional-indicator pair for one bar.
// A zero smoothed true range would make both ratios indeterminate; the
// declared fallback is (0, 0).
func (inst *AverageDirectionalIndexInstance) dirMov(candle core.OHLC) (float64, float64) {
	prev := inst.window.Push(candle)
	trueRange := inst.trMA.Next(candle.TR(prev))

	du := candle.High() - prev.High()
	dd := prev.Low() - candle.Low()

	var plusDM, minusDM float64
	if du > dd && du > 0 {
		plusDM = du
	}
	if dd > du && dd > 0 {
		minusDM = dd
	}

	plus := inst.plusDM.Next(plusDM)
	minus := inst.minusDM.Next(minusDM)

	if trueRange == 0 {
		return 0, 0
	}
	return plus / trueRange, minus / trueRange
}

// adx folds the DI pair into the smoothed trend-strength line. A zero DI sum
// feeds 0 into the smoothing instead of dividing by it.
func (inst *AverageDirectionalIndexInstance) adx(plus, minus float64) float64 {
	sum := plus + minus
	if sum == 0 {
		return inst.adxMA.Next(0)
	}
	return inst.adxMA.Next(math.Abs(plus-minus) / sum)
}

// Next consumes one bar and emits ADX, +DI, -DI plus the two signals.
func (inst *AverageDirectionalIndexInstance) Next(candle core.OHLC) core.IndicatorResult {
	plus, minus := inst.dirMov(candle)
	adx := inst.adx(plus, minus)

	var signal1 core.Action
	if adx > inst.cfg.Zone {
		switch {
		case plus > minus:
			signal1 = core.Buy
		case plus < minus:
			signal1 = core.Sell
		}
	}
	signal2 := core.ActionFromRatio(plus - minus)

	return core.NewIndicatorResult(
		[]float64{adx, plus, minus},
		[]core.Action{signal1, signal2},
	)
}
