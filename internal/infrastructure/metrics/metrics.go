package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "magna",
			Subsystem: "analysis_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Orchestration counters
	OrchestrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "magna",
			Subsystem: "analysis_api",
			Name:      "orchestrations_total",
			Help:      "Total orchestration runs by task type and outcome",
		},
		[]string{"task_type", "status"},
	)

	// Provider calls
	ProviderCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "magna",
			Subsystem: "analysis_api",
			Name:      "provider_calls_total",
			Help:      "Total provider invocations by outcome",
		},
		[]string{"provider", "status"},
	)

	ProviderErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "magna",
			Subsystem: "analysis_api",
			Name:      "provider_errors_total",
			Help:      "Total provider call failures",
		},
		[]string{"provider", "error_type"},
	)

	// Interaction log write failures
	LogWriteFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "magna",
			Subsystem: "analysis_api",
			Name:      "log_write_failures_total",
			Help:      "Total interaction log records dropped on write failure",
		},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "magna",
			Subsystem: "analysis_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Provider call duration
	ProviderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "magna",
			Subsystem: "analysis_api",
			Name:      "provider_duration_seconds",
			Help:      "Provider inference call duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"provider"},
	)

	// Estimated spend per provider
	ProviderCostTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "magna",
			Subsystem: "analysis_api",
			Name:      "provider_cost_dollars_total",
			Help:      "Estimated cumulative provider spend in dollars",
		},
		[]string{"provider"},
	)

	// Provider health gauge
	ProviderHealth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "magna",
			Subsystem: "analysis_api",
			Name:      "provider_health",
			Help:      "Provider health status (1=online, 0.5=degraded, 0=offline)",
		},
		[]string{"provider"},
	)

	// System health gauge
	SystemHealth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "magna",
			Subsystem: "analysis_api",
			Name:      "system_health",
			Help:      "Fleet health status (1=healthy, 0.5=warning, 0=critical)",
		},
	)
)

// RecordRequest records an HTTP request with all relevant labels
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(durationSec)
}

// RecordOrchestration records an orchestration run outcome
func RecordOrchestration(taskType, status string) {
	if taskType == "" {
		taskType = "unknown"
	}
	OrchestrationsTotal.WithLabelValues(taskType, status).Inc()
}

// RecordProviderCall records a provider invocation with its duration and cost
func RecordProviderCall(provider, status string, durationSec, cost float64) {
	ProviderCallsTotal.WithLabelValues(provider, status).Inc()
	ProviderDuration.WithLabelValues(provider).Observe(durationSec)
	if cost > 0 {
		ProviderCostTotal.WithLabelValues(provider).Add(cost)
	}
}

// RecordProviderError records a provider error
func RecordProviderError(provider, errorType string) {
	ProviderErrorsTotal.WithLabelValues(provider, errorType).Inc()
}

// RecordLogWriteFailure records a dropped interaction log write
func RecordLogWriteFailure() {
	LogWriteFailuresTotal.Inc()
}

// SetProviderHealth sets the health gauge for a provider
func SetProviderHealth(provider string, value float64) {
	ProviderHealth.WithLabelValues(provider).Set(value)
}

// SetSystemHealth sets the fleet-wide health gauge
func SetSystemHealth(value float64) {
	SystemHealth.Set(value)
}
