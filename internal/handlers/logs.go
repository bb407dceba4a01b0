package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"logger-service/internal/logging"
	"logger-service/internal/metrics"

	"github.com/gorilla/mux"
)

// EmitLogs handles GET /{level}/{message}/ and
// GET /{level}/{message}/{count}. It writes the message to the sink
// count times (default 1) at the requested severity and confirms in the
// response body how many lines were emitted.
//
// The count is deliberately not clamped server-side; a large value
// produces a correspondingly large number of synchronous emissions
// within the one request.
func (h *Handlers) EmitLogs(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	level := vars["level"]
	message := vars["message"]

	severity, ok := logging.ParseSeverity(level)
	if !ok {
		metrics.InvalidLevelRequests.Inc()
		http.Error(w,
			fmt.Sprintf("Invalid log level: %s. Must be one of: %s",
				level, strings.Join(logging.ValidLevels(), ", ")),
			http.StatusBadRequest)
		return
	}

	count := 1
	if raw, present := vars["count"]; present {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			// The route pattern only admits digits; Atoi can still
			// fail on overflow.
			http.Error(w, fmt.Sprintf("Invalid count: %s", raw), http.StatusBadRequest)
			return
		}
		count = parsed
	}

	for i := 0; i < count; i++ {
		h.sink.Emit(severity, message)
	}
	metrics.LogLinesEmitted.WithLabelValues(strings.ToLower(severity.String()), "request").Add(float64(count))

	fmt.Fprintf(w, "Emitted %d logs at level %s with message: %s",
		count, strings.ToUpper(level), message)
}
