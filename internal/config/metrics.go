package config

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	configLoadTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_config_load_timestamp_seconds",
			Help: "Unix timestamp of the last successful configuration load",
		},
	)

	configValidationErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_config_validation_errors_total",
			Help: "Total configuration validation errors by field",
		},
		[]string{"field"},
	)
)

func recordLoad() {
	configLoadTimestamp.Set(float64(time.Now().Unix()))
}

func recordValidationError(field string) {
	configValidationErrorsTotal.WithLabelValues(field).Inc()
}
