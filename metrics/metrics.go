package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	BarsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yata_bars_processed_total",
			Help: "Total number of bars fed through the suite (by indicator).",
		},
		[]string{"indicator"},
	)

	ConfigWarnings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yata_config_warnings_total",
			Help: "Total number of rejected configuration attributes (by indicator).",
		},
		[]string{"indicator"},
	)
)

func init() {
	prometheus.MustRegister(BarsProcessed, ConfigWarnings)
}
