// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// SessionsStarted tracks interview sessions started.
	SessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "interview_sessions_started_total",
			Help: "Total interview sessions started",
		},
	)

	// SessionsCompleted tracks interview sessions completed, by reason.
	SessionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interview_sessions_completed_total",
			Help: "Total interview sessions completed",
		},
		[]string{"reason"},
	)

	// TurnsTotal tracks conversation turns appended, by role.
	TurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interview_turns_total",
			Help: "Total conversation turns appended",
		},
		[]string{"role"},
	)

	// GenerationDuration tracks AI generation duration per operation.
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_generation_duration_seconds",
			Help:    "AI generation duration in seconds",
			Buckets: []float64{.5, 1, 2, 5, 10, 20, 30, 45, 60},
		},
		[]string{"operation", "provider", "status"},
	)

	// ParserFallbacks tracks fallback substitutions in model output parsing.
	ParserFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parser_fallbacks_total",
			Help: "Total fallback values substituted for missing model output fields",
		},
		[]string{"field"},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordGeneration records one AI gateway call.
func RecordGeneration(operation, provider, status string, duration float64) {
	GenerationDuration.WithLabelValues(operation, provider, status).Observe(duration)
}

// RecordParserFallback records one fallback substitution for a field.
func RecordParserFallback(field string) {
	ParserFallbacks.WithLabelValues(field).Inc()
}

// RecordTurn records one conversation turn appended for a role.
func RecordTurn(role string) {
	TurnsTotal.WithLabelValues(role).Inc()
}

// RecordSessionCompleted records one completed session with its reason.
func RecordSessionCompleted(reason string) {
	SessionsCompleted.WithLabelValues(reason).Inc()
}
