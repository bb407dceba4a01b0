package handlers

import (
	"net/http"
	"runtime"
	"time"

	"logger-service/internal/heartbeat"
	"logger-service/internal/startup"
)

const (
	statusHealthy  = "healthy"
	statusDegraded = "degraded"
)

// HealthResponse contains the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`

	Heartbeat heartbeat.Status `json:"heartbeat"`

	// System info
	GoVersion    string `json:"goVersion"`
	NumCPU       int    `json:"numCpu"`
	NumGoroutine int    `json:"numGoroutine"`
}

// HealthCheck returns the health status of the service. The service is
// degraded when the heartbeat emitter is not running.
func (h *Handlers) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	hbStatus := h.heartbeat.GetStatus()

	response := HealthResponse{
		Version:      startup.Version,
		Uptime:       time.Since(h.startTime).String(),
		Heartbeat:    hbStatus,
		GoVersion:    runtime.Version(),
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
	}

	if hbStatus.Running {
		response.Status = statusHealthy
	} else {
		response.Status = statusDegraded
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	h.writeJSON(w, response)
}

// LivenessCheck is a simple liveness probe (always returns 200 if the
// server is running)
func (h *Handlers) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	// For HEAD requests, only send headers (no body)
	if r.Method != http.MethodHead {
		h.writeJSON(w, map[string]string{
			"status": "alive",
		})
	}
}

// ReadinessCheck returns 200 once the heartbeat emitter has been started.
func (h *Handlers) ReadinessCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if h.heartbeat.IsRunning() {
		w.WriteHeader(http.StatusOK)
		h.writeJSON(w, map[string]string{
			"status": "ready",
		})
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
		h.writeJSON(w, map[string]string{
			"status": "not_ready",
		})
	}
}
