package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ParamsLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stgpattern_params_lookups_total",
			Help: "Total number of parameter set lookups (by timeframe and result).",
		},
		[]string{"timeframe", "result"},
	)

	BindingsRegistered = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "stgpattern_bindings_registered",
			Help: "Number of timeframes with a bound parameter set.",
		},
	)
)

func init() {
	prometheus.MustRegister(ParamsLookups, BindingsRegistered)
}
