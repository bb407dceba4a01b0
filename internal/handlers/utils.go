package handlers

import (
	"encoding/json"
	"net/http"
)

// writeJSON encodes v as JSON and writes it to the response writer.
// Encoding or write errors are logged through the sink since we typically
// cannot recover from them in an HTTP handler context.
func (h *Handlers) writeJSON(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.sink.Error("failed to encode JSON response: %v", err)
	}
}
