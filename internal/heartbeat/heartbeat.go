package heartbeat

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"logger-service/internal/logging"
	"logger-service/internal/metrics"
)

// defaultInterval is used when no valid interval is configured.
const defaultInterval = 10 * time.Second

// Heartbeat emits one log line at a fixed interval for the lifetime of
// the process. It runs as a single supervised goroutine started with
// Start and stopped with Stop; it never blocks process shutdown.
type Heartbeat struct {
	sink     *logging.Sink
	level    logging.Severity
	message  string
	interval time.Duration

	stopChan  chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once

	startTime time.Time
	running   atomic.Bool
	ticks     atomic.Int64
	lastTick  atomic.Value // time.Time
}

// Status is a snapshot of the heartbeat state for health reporting.
type Status struct {
	Running  bool      `json:"running"`
	Level    string    `json:"level"`
	Message  string    `json:"message"`
	Interval string    `json:"interval"`
	Ticks    int64     `json:"ticks"`
	LastTick time.Time `json:"lastTick,omitempty"`
	Uptime   string    `json:"uptime"`
}

// New creates a Heartbeat emitting through sink. An unrecognized level
// string falls back to info without surfacing an error; a non-positive
// interval falls back to the default.
func New(sink *logging.Sink, level, message string, interval time.Duration) *Heartbeat {
	severity, ok := logging.ParseSeverity(level)
	if !ok {
		severity = logging.SeverityInfo
	}
	if interval <= 0 {
		interval = defaultInterval
	}

	h := &Heartbeat{
		sink:      sink,
		level:     severity,
		message:   message,
		interval:  interval,
		stopChan:  make(chan struct{}),
		startTime: time.Now(),
	}
	h.lastTick.Store(time.Time{})
	return h
}

// Start launches the emission loop in a background goroutine. Calling
// Start more than once has no effect.
func (h *Heartbeat) Start() {
	h.startOnce.Do(func() {
		h.running.Store(true)
		metrics.HeartbeatRunning.Set(1)
		go h.run()
	})
}

// Stop terminates the emission loop. Safe to call multiple times and
// before Start.
func (h *Heartbeat) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopChan)
	})
}

// Level returns the resolved emission severity.
func (h *Heartbeat) Level() logging.Severity {
	return h.level
}

// Interval returns the emission interval.
func (h *Heartbeat) Interval() time.Duration {
	return h.interval
}

func (h *Heartbeat) run() {
	defer func() {
		h.running.Store(false)
		metrics.HeartbeatRunning.Set(0)
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			h.emit()
		case <-h.stopChan:
			return
		}
	}
}

func (h *Heartbeat) emit() {
	h.sink.Emit(h.level, h.message)
	h.ticks.Add(1)

	now := time.Now()
	h.lastTick.Store(now)
	metrics.HeartbeatTicks.Inc()
	metrics.HeartbeatLastTickTimestamp.Set(float64(now.Unix()))
	metrics.LogLinesEmitted.WithLabelValues(strings.ToLower(h.level.String()), "heartbeat").Inc()
}

// Ticks returns the number of heartbeat lines emitted so far.
func (h *Heartbeat) Ticks() int64 {
	return h.ticks.Load()
}

// IsRunning returns true while the emission loop is active.
func (h *Heartbeat) IsRunning() bool {
	return h.running.Load()
}

// GetStatus returns a snapshot of the heartbeat state.
func (h *Heartbeat) GetStatus() Status {
	lastTick, _ := h.lastTick.Load().(time.Time)

	return Status{
		Running:  h.running.Load(),
		Level:    strings.ToLower(h.level.String()),
		Message:  h.message,
		Interval: h.interval.String(),
		Ticks:    h.ticks.Load(),
		LastTick: lastTick,
		Uptime:   time.Since(h.startTime).String(),
	}
}
