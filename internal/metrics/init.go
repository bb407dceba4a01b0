package metrics

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	levels := []string{"debug", "info", "warning", "error", "critical"}

	for _, level := range levels {
		LogLinesEmitted.WithLabelValues(level, "request")
	}
	// The heartbeat only ever emits at one level per process, but the
	// configured level is not known to this package.
	for _, level := range levels {
		LogLinesEmitted.WithLabelValues(level, "heartbeat")
	}

	CrashesTriggered.WithLabelValues("true")
	CrashesTriggered.WithLabelValues("false")

	HeartbeatRunning.Set(0)
}
