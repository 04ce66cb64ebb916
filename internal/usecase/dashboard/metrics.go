package dashboard

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the demo data provider
var (
	// providerCallsTotal tracks accessor calls per operation and outcome
	providerCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_provider_calls_total",
			Help: "Total number of demo data provider calls",
		},
		[]string{"operation", "status"}, // status: success|canceled
	)

	// providerCallDuration tracks wall time per accessor, simulated delay included
	providerCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_provider_call_duration_seconds",
			Help:    "Demo data provider call duration in seconds",
			Buckets: []float64{.01, .05, .1, .15, .2, .25, .5, 1},
		},
		[]string{"operation"},
	)

	// providerRecordsReturned tracks the size of each returned collection
	providerRecordsReturned = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dashboard_provider_records",
			Help: "Number of records returned by the last successful call",
		},
		[]string{"operation"},
	)
)
