package handlers

import (
	"github.com/gorilla/mux"
)

// Router builds the service's route table. StrictSlash makes the
// canonical trailing-slash forms (`/{level}/{message}/`, `/crash/`)
// reachable without the slash via a redirect, matching the documented
// surface. The count segment admits digits only, so a non-integer count
// never reaches the handler.
func (h *Handlers) Router() *mux.Router {
	r := mux.NewRouter().StrictSlash(true)

	// Health, version, and home routes
	r.HandleFunc("/", h.Home).Methods("GET")
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.HandleFunc("/livez", h.LivenessCheck).Methods("GET", "HEAD")
	r.HandleFunc("/readyz", h.ReadinessCheck).Methods("GET")
	r.HandleFunc("/version", h.GetVersion).Methods("GET")

	// Crash trigger; registered before the level routes so "crash"
	// is never interpreted as a level
	r.HandleFunc("/crash/", h.Crash).Methods("GET")
	r.HandleFunc("/crash/{handle}", h.Crash).Methods("GET")

	// Log emission
	r.HandleFunc("/{level}/{message}/", h.EmitLogs).Methods("GET")
	r.HandleFunc("/{level}/{message}/{count:[0-9]+}", h.EmitLogs).Methods("GET")

	return r
}
