package momentum

import (
	"fmt"
	"strconv"

	"github.com/jzajpt/yata/indicator/core"
)

// CoppockCurve is a long-horizon momentum oscillator: the smoothed sum of
// two rates of change of a single price series.
//
// 2 values: the curve and its secondary smoothing.
// 3 signals: zero-line crossing, confirmed pivot on the curve, and the
// curve crossing its smoothing line.
type CoppockCurve struct {
	Period1 int // primary smoothing length
	Period2 int // first rate-of-change lag
	Period3 int // second rate-of-change lag

	S2Left  int // pivot lookback before the candidate
	S2Right int // pivot confirmation lag

	S3Period int // secondary smoothing length

	Source  core.Source
	Method1 core.MethodType
	Method2 core.MethodType
}

// DefaultCoppockCurve returns the conventional 10/14/11 WMA-over-close setup.
func DefaultCoppockCurve() CoppockCurve {
	return CoppockCurve{
		Period1:  10,
		Period2:  14,
		Period3:  11,
		S2Left:   4,
		S2Right:  2,
		S3Period: 5,
		Source:   core.SourceClose,
		Method1:  core.WMAMethod,
		Method2:  core.EMAMethod,
	}
}

// Validate checks that every period and span is positive and that the
// source and smoothing tags come from the supported sets.
func (cfg CoppockCurve) Validate() bool {
	if _, err := core.ParseMethodType(string(cfg.Method1)); err != nil {
		return false
	}
	if _, err := core.ParseMethodType(string(cfg.Method2)); err != nil {
		return false
	}
	if _, err := core.ParseSource(string(cfg.Source)); err != nil {
		return false
	}
	return cfg.Period1 >= 1 &&
		cfg.Period2 >= 1 &&
		cfg.Period3 >= 1 &&
		cfg.S2Left >= 1 &&
		cfg.S2Right >= 1 &&
		cfg.S3Period >= 1
}

// Set parses one named field. Unknown names and unparsable values are
// reported through the returned diagnostic and leave the field unchanged.
func (cfg *CoppockCurve) Set(name, value string) error {
	switch name {
	case "period1", "period2", "period3", "s2_left", "s2_right", "s3_period":
		n, err := strconv.Atoi(value)
		if err != nil {
			return core.InvalidAttributeValueError(name, value, err)
		}
		switch name {
		case "period1":
			cfg.Period1 = n
		case "period2":
			cfg.Period2 = n
		case "period3":
			cfg.Period3 = n
		case "s2_left":
			cfg.S2Left = n
		case "s2_right":
			cfg.S2Right = n
		case "s3_period":
			cfg.S3Period = n
		}
	case "source":
		src, err := core.ParseSource(value)
		if err != nil {
			return core.InvalidAttributeValueError(name, value, err)
		}
		cfg.Source = src
	case "method1":
		m, err := core.ParseMethodType(value)
		if err != nil {
			return core.InvalidAttributeValueError(name, value, err)
		}
		cfg.Method1 = m
	case "method2":
		m, err := core.ParseMethodType(value)
		if err != nil {
			return core.InvalidAttributeValueError(name, value, err)
		}
		cfg.Method2 = m
	default:
		return core.UnknownAttributeError(name)
	}
	return nil
}

// Size declares the fixed (2 values, 3 signals) result shape.
func (cfg CoppockCurve) Size() (int, int) {
	return 2, 3
}

// Init binds the configuration to the first observed bar, seeding both
// rate-of-change windows with the bar's selected source value.
func (cfg CoppockCurve) Init(candle core.OHLC) (core.IndicatorInstance, error) {
	if !cfg.Validate() {
		return nil, core.ErrInvalidConfig
	}

	src := candle.Source(cfg.Source)
	roc1, err := core.NewRateOfChange(cfg.Period2, src)
	if err != nil {
		return nil, fmt.Errorf("failed to create first rate of change: %w", err)
	}
	roc2, err := core.NewRateOfChange(cfg.Period3, src)
	if err != nil {
		return nil, fmt.Errorf("failed to create second rate of change: %w", err)
	}
	ma1, err := core.NewMethod(cfg.Method1, cfg.Period1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create curve smoothing: %w", err)
	}
	ma2, err := core.NewMethod(cfg.Method2, cfg.S3Period, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create signal-line smoothing: %w", err)
	}
	pivot, err := core.NewReverseSignal(cfg.S2Left, cfg.S2Right, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create pivot detector: %w", err)
	}

	return &CoppockCurveInstance{
		cfg:   cfg,
		roc1:  roc1,
		roc2:  roc2,
		ma1:   ma1,
		ma2:   ma2,
		pivot: pivot,
	}, nil
}

// CoppockCurveInstance is the running per-stream state.
type CoppockCurveInstance struct {
	cfg CoppockCurve

	roc1  *core.RateOfChange
	roc2  *core.RateOfChange
	ma1   core.Method
	ma2   core.Method
	pivot *core.ReverseSignal

	crossZero   core.Cross
	crossSignal core.Cross
}

// Config returns the bound configuration. The returned value is a copy, so
// mutating it cannot reach into the running instance.
func (inst *CoppockCurveInstance) Config() core.IndicatorConfig {
	cfg := inst.cfg
	return &cfg
}

// Next consumes one bar and emits the curve, its smoothing, and the three
// signals.
func (inst *CoppockCurveInstance) Next(candle core.OHLC) core.IndicatorResult {
	src := candle.Source(inst.cfg.Source)
	roc1 := inst.roc1.Next(src)
	roc2 := inst.roc2.Next(src)
	value1 := inst.ma1.Next(roc1 + roc2)
	value2 := inst.ma2.Next(value1)

	signal1 := inst.crossZero.Next(value1, 0)
	signal2 := inst.pivot.Next(value1)
	signal3 := inst.crossSignal.Next(value1, value2)

	return core.NewIndicatorResult(
		[]float64{value1, value2},
		[]core.Action{signal1, signal2, signal3},
	)
}
