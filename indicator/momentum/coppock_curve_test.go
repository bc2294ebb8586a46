package momentum

import (
	"errors"
	"testing"

	"github.com/jzajpt/yata/indicator/core"
)

func flatCandle(price float64) core.Candle {
	return core.Candle{
		OpenPrice:  price,
		HighPrice:  price,
		LowPrice:   price,
		ClosePrice: price,
	}
}

func TestCoppockCurve_Validate(t *testing.T) {
	cfg := DefaultCoppockCurve()
	if !cfg.Validate() {
		t.Fatal("default config must validate")
	}

	cfg.Period2 = 0
	if cfg.Validate() {
		t.Error("zero rate-of-change lag must not validate")
	}

	cfg = DefaultCoppockCurve()
	cfg.Source = "median"
	if cfg.Validate() {
		t.Error("unknown source must not validate")
	}

	cfg = DefaultCoppockCurve()
	cfg.S2Right = 0
	if cfg.Validate() {
		t.Error("zero confirmation span must not validate")
	}
}

func TestCoppockCurve_Set(t *testing.T) {
	cfg := DefaultCoppockCurve()

	if err := cfg.Set("period2", "12"); err != nil {
		t.Fatalf("Set period2 failed: %v", err)
	}
	if cfg.Period2 != 12 {
		t.Errorf("expected Period2 12, got %d", cfg.Period2)
	}
	if err := cfg.Set("source", "hl2"); err != nil {
		t.Fatalf("Set source failed: %v", err)
	}
	if cfg.Source != core.SourceHL2 {
		t.Errorf("expected hl2 source, got %s", cfg.Source)
	}
	if err := cfg.Set("method2", "RMA"); err != nil {
		t.Fatalf("Set method2 failed: %v", err)
	}

	if err := cfg.Set("momentum", "14"); !errors.Is(err, core.ErrUnknownAttribute) {
		t.Errorf("expected ErrUnknownAttribute, got %v", err)
	}
	if err := cfg.Set("period3", "eleven"); !errors.Is(err, core.ErrInvalidAttributeValue) {
		t.Errorf("expected ErrInvalidAttributeValue, got %v", err)
	}
	if cfg.Period3 != 11 {
		t.Errorf("rejected Set must leave the field unchanged, got %d", cfg.Period3)
	}
}

// The protocol is consumed through the interface, never the concrete types.
var (
	_ core.IndicatorConfig   = &CoppockCurve{}
	_ core.IndicatorInstance = &CoppockCurveInstance{}
)

func TestCoppockCurve_ConfigInspection(t *testing.T) {
	cfg := DefaultCoppockCurve()
	cfg.S3Period = 7
	inst, err := cfg.Init(flatCandle(100))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	bound, ok := inst.Config().(*CoppockCurve)
	if !ok {
		t.Fatalf("Config() returned unexpected type %T", inst.Config())
	}
	if bound.S3Period != 7 {
		t.Errorf("expected bound S3Period 7, got %d", bound.S3Period)
	}

	// The inspection copy is detached from the running instance.
	if err := bound.Set("s3_period", "9"); err != nil {
		t.Fatalf("Set on inspection copy failed: %v", err)
	}
	again, ok := inst.Config().(*CoppockCurve)
	if !ok {
		t.Fatalf("Config() returned unexpected type %T", inst.Config())
	}
	if again.S3Period != 7 {
		t.Errorf("bound configuration must stay frozen, got S3Period %d", again.S3Period)
	}
}

func TestCoppockCurve_FirstResultMatchesSize(t *testing.T) {
	cfg := DefaultCoppockCurve()
	inst, err := cfg.Init(flatCandle(100))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	result := inst.Next(flatCandle(100))
	values, signals := result.Size()
	wantValues, wantSignals := cfg.Size()
	if values != wantValues || signals != wantSignals {
		t.Fatalf("first result arity (%d,%d) does not match Size() (%d,%d)",
			values, signals, wantValues, wantSignals)
	}
}

func TestCoppockCurve_FlatSeriesStaysAtZero(t *testing.T) {
	cfg := DefaultCoppockCurve()
	inst, err := cfg.Init(flatCandle(100))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	for i := 0; i < 30; i++ {
		result := inst.Next(flatCandle(100))
		if result.Value(0) != 0 || result.Value(1) != 0 {
			t.Fatalf("bar %d: flat prices must yield a flat curve, got (%f, %f)",
				i, result.Value(0), result.Value(1))
		}
		for s := 0; s < 3; s++ {
			if result.Signal(s) != core.None {
				t.Fatalf("bar %d: flat prices must not signal, got %v at %d",
					i, result.Signal(s), s)
			}
		}
	}
}

func TestCoppockCurve_ZeroLineCrossOnRally(t *testing.T) {
	cfg := DefaultCoppockCurve()
	inst, err := cfg.Init(flatCandle(100))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	// Flat warm-up keeps the curve pinned at zero.
	for i := 0; i < 5; i++ {
		inst.Next(flatCandle(100))
	}

	// A rally makes both rates of change positive; the curve leaves zero on
	// the first rising bar, which is exactly one zero-line cross.
	var crosses int
	price := 100.0
	for i := 0; i < 10; i++ {
		price += 2
		result := inst.Next(flatCandle(price))
		if result.Signal(0) == core.Buy {
			crosses++
		}
		if result.Value(0) <= 0 {
			t.Errorf("bar %d: expected positive curve during rally, got %f", i, result.Value(0))
		}
	}
	if crosses != 1 {
		t.Errorf("expected exactly one zero-line cross, got %d", crosses)
	}
}
