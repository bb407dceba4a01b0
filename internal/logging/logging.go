package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Severity represents the importance of a log line, ordered from least
// to most important.
type Severity int

const (
	// SeverityDebug is verbose diagnostic output
	SeverityDebug Severity = iota
	// SeverityInfo is normal operational output
	SeverityInfo
	// SeverityWarning indicates a potential problem
	SeverityWarning
	// SeverityError indicates a failed operation
	SeverityError
	// SeverityCritical indicates a crash or unrecoverable condition
	SeverityCritical
)

// severityNames maps lower-case level strings to severities. This is the
// single source of truth for which levels callers may request.
var severityNames = map[string]Severity{
	"debug":    SeverityDebug,
	"info":     SeverityInfo,
	"warning":  SeverityWarning,
	"error":    SeverityError,
	"critical": SeverityCritical,
}

// validLevels is the canonical ordered list used in error responses.
var validLevels = []string{"debug", "info", "warning", "error", "critical"}

// ParseSeverity resolves a level string to a Severity. Matching is
// case-insensitive. The second return value is false for unknown levels.
func ParseSeverity(level string) (Severity, bool) {
	sev, ok := severityNames[strings.ToLower(level)]
	return sev, ok
}

// ValidLevels returns the recognized level names in severity order.
func ValidLevels() []string {
	out := make([]string, len(validLevels))
	copy(out, validLevels)
	return out
}

// String returns the upper-case label used in emitted log lines.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(s))
	}
}

// timestampLayout renders as "2006-01-02 15:04:05,000" with a comma
// before the milliseconds.
const timestampLayout = "2006-01-02 15:04:05,000"

// Sink formats and writes log lines to a single output stream. A Sink is
// safe for concurrent use: each emitted line is written atomically with
// respect to other Emit calls.
type Sink struct {
	mu       sync.Mutex
	out      io.Writer
	minLevel Severity
	now      func() time.Time
}

// Option configures a Sink during construction.
type Option func(*Sink)

// WithMinLevel sets the minimum severity the sink will write. Lines below
// it are dropped.
func WithMinLevel(level Severity) Option {
	return func(s *Sink) {
		s.minLevel = level
	}
}

// WithClock overrides the sink's time source. Used by tests to get
// deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Sink) {
		s.now = now
	}
}

// New creates a Sink writing to out. By default every severity is written.
func New(out io.Writer, opts ...Option) *Sink {
	s := &Sink{
		out:      out,
		minLevel: SeverityDebug,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Emit writes one "<timestamp> - <SEVERITY> - <message>" line. Writes are
// best-effort: a failing writer does not surface an error to the caller.
func (s *Sink) Emit(severity Severity, message string) {
	if severity < s.minLevel {
		return
	}

	line := s.now().Format(timestampLayout) + " - " + severity.String() + " - " + message + "\n"

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.out, line)
}

// Debug emits a formatted debug message
func (s *Sink) Debug(format string, args ...interface{}) {
	s.Emit(SeverityDebug, fmt.Sprintf(format, args...))
}

// Info emits a formatted info message
func (s *Sink) Info(format string, args ...interface{}) {
	s.Emit(SeverityInfo, fmt.Sprintf(format, args...))
}

// Warning emits a formatted warning message
func (s *Sink) Warning(format string, args ...interface{}) {
	s.Emit(SeverityWarning, fmt.Sprintf(format, args...))
}

// Error emits a formatted error message
func (s *Sink) Error(format string, args ...interface{}) {
	s.Emit(SeverityError, fmt.Sprintf(format, args...))
}

// Critical emits a formatted critical message
func (s *Sink) Critical(format string, args ...interface{}) {
	s.Emit(SeverityCritical, fmt.Sprintf(format, args...))
}

// IsDebugEnabled returns true if the sink writes debug lines.
func (s *Sink) IsDebugEnabled() bool {
	return s.minLevel <= SeverityDebug
}
