package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"logger-service/internal/logging"
	"logger-service/internal/metrics"

	"github.com/gorilla/mux"
)

// propagateValues are the handle strings that request the division fault
// be re-raised instead of caught.
var propagateValues = map[string]bool{
	"false": true,
	"f":     true,
	"no":    true,
	"n":     true,
	"fail":  true,
}

const (
	crashCaughtBody = "Crash endpoint triggered! Check server logs for division by zero error."
	crashMissedBody = "This should not be returned as crash is intended"
)

// Crash handles GET /crash/ and GET /crash/{handle}. It deliberately
// divides by zero. The resulting fault is always logged once at critical
// severity; whether it is then caught (500 with an explanatory body) or
// re-raised to the server (per-request goroutine dies, connection is
// dropped) is chosen by the handle path segment.
//
// This is the only endpoint that can fault; net/http isolates the panic
// to this request's goroutine, so concurrent requests are unaffected.
func (h *Handlers) Crash(w http.ResponseWriter, r *http.Request) {
	handle := strings.ToLower(mux.Vars(r)["handle"])

	defer func() {
		rec := recover()
		if rec == nil {
			return
		}

		h.sink.Emit(logging.SeverityCritical, "Application crash initiated due to division by zero!")
		metrics.LogLinesEmitted.WithLabelValues("critical", "request").Inc()

		if propagateValues[handle] {
			metrics.CrashesTriggered.WithLabelValues("true").Inc()
			panic(rec)
		}

		metrics.CrashesTriggered.WithLabelValues("false").Inc()
		http.Error(w, crashCaughtBody, http.StatusInternalServerError)
	}()

	result := divide(1, 0)

	// Unreachable: divide panics above.
	fmt.Fprintf(w, "%s", crashMissedBody)
	_ = result
}

// divide performs the division in a separate function so the compiler
// cannot reject the expression as a constant division by zero.
func divide(numerator, denominator int) int {
	return numerator / denominator
}
