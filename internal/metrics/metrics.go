package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logger_service_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "logger_service_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "logger_service_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Log emission metrics
var (
	LogLinesEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logger_service_log_lines_emitted_total",
			Help: "Total number of log lines emitted through the sink",
		},
		[]string{"level", "source"}, // source: "request" or "heartbeat"
	)

	InvalidLevelRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logger_service_invalid_level_requests_total",
			Help: "Total number of log emission requests rejected for an unknown level",
		},
	)
)

// Heartbeat metrics
var (
	HeartbeatTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logger_service_heartbeat_ticks_total",
			Help: "Total number of heartbeat log lines emitted",
		},
	)

	HeartbeatLastTickTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "logger_service_heartbeat_last_tick_timestamp",
			Help: "Unix timestamp of the last heartbeat emission",
		},
	)

	HeartbeatRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "logger_service_heartbeat_running",
			Help: "Whether the heartbeat emitter is running (1 = running, 0 = stopped)",
		},
	)
)

// Crash endpoint metrics
var (
	CrashesTriggered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logger_service_crashes_triggered_total",
			Help: "Total number of deliberate crashes triggered via the crash endpoint",
		},
		[]string{"propagated"}, // "true" or "false"
	)
)
