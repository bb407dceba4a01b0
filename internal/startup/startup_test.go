package startup

import (
	"bytes"
	"net/http"
	"strings"
	"testing"
	"time"

	"logger-service/internal/logging"

	"github.com/gorilla/mux"
)

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()

	if info.Version == "" {
		t.Error("Expected Version to be set")
	}
	if info.GoVersion == "" {
		t.Error("Expected GoVersion to be set")
	}
	if info.OS == "" {
		t.Error("Expected OS to be set")
	}
	if info.Arch == "" {
		t.Error("Expected Arch to be set")
	}
	if info.GoVersion != GoVersion {
		t.Errorf("Expected GoVersion=%s, got %s", GoVersion, info.GoVersion)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"PERIODIC_LOG_LEVEL", "PERIODIC_LOG_MESSAGE", "PERIODIC_LOG_INTERVAL",
		"HOST", "PORT", "DEBUG", "METRICS_PORT", "METRICS_ENABLED", "LOG_HEALTH_CHECKS",
	} {
		t.Setenv(key, "")
	}

	config := LoadConfig()

	if config.PeriodicLogLevel != "INFO" {
		t.Errorf("PeriodicLogLevel = %q, want %q", config.PeriodicLogLevel, "INFO")
	}
	if config.PeriodicLogMessage != "System heartbeat" {
		t.Errorf("PeriodicLogMessage = %q, want %q", config.PeriodicLogMessage, "System heartbeat")
	}
	if config.PeriodicLogInterval != 10*time.Second {
		t.Errorf("PeriodicLogInterval = %v, want 10s", config.PeriodicLogInterval)
	}
	if config.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want %q", config.Host, "0.0.0.0")
	}
	if config.Port != "5000" {
		t.Errorf("Port = %q, want %q", config.Port, "5000")
	}
	if config.Debug {
		t.Error("Debug should default to false")
	}
	if !config.MetricsEnabled {
		t.Error("MetricsEnabled should default to true")
	}
	if config.LogHealthChecks {
		t.Error("LogHealthChecks should default to false")
	}
	if len(config.Warnings) != 0 {
		t.Errorf("Unexpected warnings: %v", config.Warnings)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PERIODIC_LOG_LEVEL", "warning")
	t.Setenv("PERIODIC_LOG_MESSAGE", "still alive")
	t.Setenv("PERIODIC_LOG_INTERVAL", "3")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")
	t.Setenv("DEBUG", "true")

	config := LoadConfig()

	if config.PeriodicLogLevel != "warning" {
		t.Errorf("PeriodicLogLevel = %q", config.PeriodicLogLevel)
	}
	if config.PeriodicLogMessage != "still alive" {
		t.Errorf("PeriodicLogMessage = %q", config.PeriodicLogMessage)
	}
	if config.PeriodicLogInterval != 3*time.Second {
		t.Errorf("PeriodicLogInterval = %v, want 3s", config.PeriodicLogInterval)
	}
	if config.Addr() != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q, want %q", config.Addr(), "127.0.0.1:8080")
	}
	if !config.Debug {
		t.Error("Debug should be true")
	}
}

func TestLoadConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		value        string
		wantWarnings int
		check        func(*Config) bool
	}{
		{
			name:         "Invalid interval",
			key:          "PERIODIC_LOG_INTERVAL",
			value:        "often",
			wantWarnings: 1,
			check:        func(c *Config) bool { return c.PeriodicLogInterval == 10*time.Second },
		},
		{
			name:         "Negative interval",
			key:          "PERIODIC_LOG_INTERVAL",
			value:        "-5",
			wantWarnings: 1,
			check:        func(c *Config) bool { return c.PeriodicLogInterval == 10*time.Second },
		},
		{
			name:         "Invalid debug flag",
			key:          "DEBUG",
			value:        "maybe",
			wantWarnings: 1,
			check:        func(c *Config) bool { return !c.Debug },
		},
		{
			name:         "Non-numeric port",
			key:          "PORT",
			value:        "http",
			wantWarnings: 1,
			check:        func(c *Config) bool { return c.Port == "5000" },
		},
		{
			name:         "Port out of range",
			key:          "PORT",
			value:        "70000",
			wantWarnings: 1,
			check:        func(c *Config) bool { return c.Port == "5000" },
		},
		{
			name:         "Unknown periodic level is not rejected",
			key:          "PERIODIC_LOG_LEVEL",
			value:        "shouty",
			wantWarnings: 0,
			check:        func(c *Config) bool { return c.PeriodicLogLevel == "shouty" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			config := LoadConfig()

			if len(config.Warnings) != tt.wantWarnings {
				t.Errorf("Got %d warnings (%v), want %d", len(config.Warnings), config.Warnings, tt.wantWarnings)
			}
			if !tt.check(config) {
				t.Errorf("Config did not fall back as expected: %+v", config)
			}
		})
	}
}

func TestLogStartupIncludesConfigAndWarnings(t *testing.T) {
	t.Setenv("PERIODIC_LOG_INTERVAL", "bogus")
	t.Setenv("PERIODIC_LOG_LEVEL", "shouty")

	config := LoadConfig()

	var buf bytes.Buffer
	sink := logging.New(&buf)
	LogStartup(sink, config)

	out := buf.String()
	if !strings.Contains(out, "PERIODIC_LOG_INTERVAL") {
		t.Error("Startup log missing configuration section")
	}
	if !strings.Contains(out, "WARNING - ") {
		t.Error("Startup log missing warning for invalid interval")
	}
	if !strings.Contains(out, "heartbeat will use info") {
		t.Error("Startup log missing unknown-level notice")
	}
}

var noop = func(http.ResponseWriter, *http.Request) {}

func TestGetRoutes(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/", noop).Methods("GET")
	r.HandleFunc("/crash/", noop).Methods("GET")
	r.HandleFunc("/{level}/{message}/", noop).Methods("GET")

	routes, err := GetRoutes(r)
	if err != nil {
		t.Fatalf("GetRoutes returned error: %v", err)
	}
	if len(routes) != 3 {
		t.Fatalf("Expected 3 routes, got %d", len(routes))
	}

	paths := make(map[string]bool)
	for _, route := range routes {
		paths[route.Path] = true
		if route.Method != "GET" {
			t.Errorf("Route %s method = %q, want GET", route.Path, route.Method)
		}
	}
	for _, want := range []string{"/", "/crash/", "/{level}/{message}/"} {
		if !paths[want] {
			t.Errorf("Missing route %q", want)
		}
	}
}

func TestLogHTTPRoutesDebugDump(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/crash/", noop).Methods("GET")

	var buf bytes.Buffer
	sink := logging.New(&buf)
	LogHTTPRoutes(sink, r, true)

	if !strings.Contains(buf.String(), "Registered routes") {
		t.Error("Debug route dump missing")
	}

	buf.Reset()
	LogHTTPRoutes(sink, r, false)
	if strings.Contains(buf.String(), "Registered routes") {
		t.Error("Route dump present without debug")
	}
}
