package suite

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jzajpt/yata/indicator/core"
	"github.com/jzajpt/yata/indicator/momentum"
	"github.com/jzajpt/yata/indicator/trend"
	"github.com/jzajpt/yata/logger"
	"github.com/jzajpt/yata/metrics"
)

// ---------------------------------------------------------------------
// IndicatorSuite – aggregates indicator instances behind one bar feed.
// ---------------------------------------------------------------------
//
// Configurations stay mutable (ApplySettings) until the first bar arrives;
// Feed then binds each configuration to that bar and streams every
// subsequent bar through the bound instances. Like the core, the suite is
// single-threaded; hosts that want one suite per symbol run them on
// independent goroutines without any shared state.
type IndicatorSuite struct {
	log logger.Logger

	order     []string
	configs   map[string]core.IndicatorConfig
	instances map[string]core.IndicatorInstance
}

// NewIndicatorSuite creates a suite pre-loaded with the default
// AverageDirectionalIndex ("adx") and CoppockCurve ("coppock") setups.
func NewIndicatorSuite(log logger.Logger) *IndicatorSuite {
	if log == nil {
		log = logger.NewNopLogger()
	}
	s := &IndicatorSuite{
		log:       log,
		configs:   make(map[string]core.IndicatorConfig),
		instances: make(map[string]core.IndicatorInstance),
	}
	adx := trend.DefaultAverageDirectionalIndex()
	coppock := momentum.DefaultCoppockCurve()
	// Registration of the library defaults cannot collide.
	_ = s.Register("adx", &adx)
	_ = s.Register("coppock", &coppock)
	return s
}

// Register adds a named configuration to the suite. The name must be unique
// and the configuration is bound to the first bar fed after registration.
func (s *IndicatorSuite) Register(name string, cfg core.IndicatorConfig) error {
	if name == "" {
		return fmt.Errorf("indicator name must not be empty")
	}
	if _, exists := s.configs[name]; exists {
		return fmt.Errorf("indicator %q already registered", name)
	}
	s.configs[name] = cfg
	s.order = append(s.order, name)
	return nil
}

// ApplySettings applies string field-set pairs to a registered, not yet
// bound configuration. The policy is best-effort: rejected attributes are
// logged and counted, the remaining pairs are still applied, and the call
// only fails when the indicator itself is unknown or already streaming.
func (s *IndicatorSuite) ApplySettings(name string, settings map[string]string) error {
	cfg, ok := s.configs[name]
	if !ok {
		return fmt.Errorf("unknown indicator %q", name)
	}
	if _, bound := s.instances[name]; bound {
		return fmt.Errorf("indicator %q is already bound to a stream", name)
	}
	for attr, value := range settings {
		if err := cfg.Set(attr, value); err != nil {
			metrics.ConfigWarnings.WithLabelValues(name).Inc()
			s.log.Warn("config_attribute_rejected",
				zap.String("indicator", name),
				zap.String("attribute", attr),
				zap.String("value", value),
				zap.Error(err),
			)
		}
	}
	return nil
}

// Feed forwards one bar to every indicator and returns the per-indicator
// results, keyed by registration name. Unbound configurations are bound to
// this bar first; a configuration that fails validation is reported once
// and skipped for the rest of the stream.
func (s *IndicatorSuite) Feed(candle core.OHLC) map[string]core.IndicatorResult {
	results := make(map[string]core.IndicatorResult, len(s.order))
	for _, name := range s.order {
		inst, bound := s.instances[name]
		if !bound {
			built, err := s.configs[name].Init(candle)
			if err != nil {
				s.log.Error("indicator_init_failed",
					zap.String("indicator", name),
					zap.Error(err),
				)
				// Mark as handled so the error is not re-reported per bar.
				s.instances[name] = nil
				continue
			}
			s.instances[name] = built
			inst = built
		}
		if inst == nil {
			continue
		}
		results[name] = inst.Next(candle)
		metrics.BarsProcessed.WithLabelValues(name).Inc()
	}
	return results
}

// Config returns the configuration registered under `name` for inspection.
func (s *IndicatorSuite) Config(name string) (core.IndicatorConfig, error) {
	cfg, ok := s.configs[name]
	if !ok {
		return nil, fmt.Errorf("unknown indicator %q", name)
	}
	return cfg, nil
}

// Names returns the registered indicator names in feed order.
func (s *IndicatorSuite) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
