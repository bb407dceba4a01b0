package handlers

import (
	"time"

	"logger-service/internal/heartbeat"
	"logger-service/internal/logging"
)

// Handlers holds the request handlers and their injected collaborators.
// The sink is shared with the heartbeat emitter; handlers never construct
// their own logging state.
type Handlers struct {
	sink      *logging.Sink
	heartbeat *heartbeat.Heartbeat
	startTime time.Time
}

// New creates the handler set around the given sink and heartbeat.
func New(sink *logging.Sink, hb *heartbeat.Heartbeat) *Handlers {
	return &Handlers{
		sink:      sink,
		heartbeat: hb,
		startTime: time.Now(),
	}
}
