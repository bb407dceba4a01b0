package startup

import (
	"fmt"
	"net"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"logger-service/internal/logging"

	"github.com/gorilla/mux"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// Config holds all application configuration, read once at startup and
// immutable for the process lifetime.
type Config struct {
	PeriodicLogLevel    string
	PeriodicLogMessage  string
	PeriodicLogInterval time.Duration
	Host                string
	Port                string
	Debug               bool
	MetricsPort         string
	MetricsEnabled      bool
	LogHealthChecks     bool

	// Warnings collected while reading the environment; logged once a
	// sink exists.
	Warnings []string
}

// Addr returns the main listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// MetricsAddr returns the metrics listen address.
func (c *Config) MetricsAddr() string {
	return net.JoinHostPort(c.Host, c.MetricsPort)
}

// LoadConfig reads configuration from environment variables. It never
// fails: invalid values fall back to defaults with a recorded warning,
// and an unrecognized PERIODIC_LOG_LEVEL is deliberately left as-is (the
// heartbeat resolves it to info itself).
func LoadConfig() *Config {
	c := &Config{}

	c.PeriodicLogLevel = c.getEnv("PERIODIC_LOG_LEVEL", "INFO")
	c.PeriodicLogMessage = c.getEnv("PERIODIC_LOG_MESSAGE", "System heartbeat")
	c.PeriodicLogInterval = time.Duration(c.getEnvInt("PERIODIC_LOG_INTERVAL", 10)) * time.Second
	c.Host = c.getEnv("HOST", "0.0.0.0")
	c.Port = c.getEnvPort("PORT", "5000")
	c.Debug = c.getEnvBool("DEBUG", false)
	c.MetricsPort = c.getEnvPort("METRICS_PORT", "9090")
	c.MetricsEnabled = c.getEnvBool("METRICS_ENABLED", true)
	c.LogHealthChecks = c.getEnvBool("LOG_HEALTH_CHECKS", false)

	if c.PeriodicLogInterval <= 0 {
		c.warn("Non-positive PERIODIC_LOG_INTERVAL, using default: 10")
		c.PeriodicLogInterval = 10 * time.Second
	}

	return c
}

func (c *Config) warn(format string, args ...interface{}) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

func (c *Config) getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		c.warn("Invalid integer value for %s: %q, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func (c *Config) getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		c.warn("Invalid boolean value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func (c *Config) getEnvPort(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if port, err := strconv.Atoi(value); err != nil || port < 1 || port > 65535 {
		c.warn("Invalid port value for %s: %q, using default: %s", key, value, defaultValue)
		return defaultValue
	}
	return value
}

// LogStartup writes the banner, system information, and resolved
// configuration through the sink.
func LogStartup(sink *logging.Sink, config *Config) {
	sink.Info("------------------------------------------------------------")
	sink.Info("LOGGER SERVICE")
	sink.Info("------------------------------------------------------------")
	sink.Info("  Version:    %s", Version)
	sink.Info("  Commit:     %s", Commit)
	sink.Info("  Build Time: %s", BuildTime)
	sink.Info("  Started:    %s", time.Now().Format(time.RFC1123))
	sink.Info("")

	sink.Info("------------------------------------------------------------")
	sink.Info("SYSTEM INFORMATION")
	sink.Info("------------------------------------------------------------")
	sink.Info("  Go version:      %s", runtime.Version())
	sink.Info("  OS/Arch:         %s/%s", runtime.GOOS, runtime.GOARCH)
	sink.Info("  CPUs available:  %d", runtime.NumCPU())
	sink.Info("  GOMAXPROCS:      %d", runtime.GOMAXPROCS(0))
	if hostname, err := os.Hostname(); err == nil {
		sink.Debug("  Hostname:        %s", hostname)
	}
	sink.Info("")

	sink.Info("------------------------------------------------------------")
	sink.Info("CONFIGURATION")
	sink.Info("------------------------------------------------------------")
	sink.Info("  PERIODIC_LOG_LEVEL:    %s", config.PeriodicLogLevel)
	sink.Info("  PERIODIC_LOG_MESSAGE:  %s", config.PeriodicLogMessage)
	sink.Info("  PERIODIC_LOG_INTERVAL: %v", config.PeriodicLogInterval)
	sink.Info("  HOST:                  %s", config.Host)
	sink.Info("  PORT:                  %s", config.Port)
	sink.Info("  DEBUG:                 %v", config.Debug)
	sink.Info("  METRICS_PORT:          %s", config.MetricsPort)
	sink.Info("  METRICS_ENABLED:       %v", config.MetricsEnabled)
	sink.Info("  LOG_HEALTH_CHECKS:     %v", config.LogHealthChecks)

	if _, ok := logging.ParseSeverity(config.PeriodicLogLevel); !ok {
		sink.Info("  (PERIODIC_LOG_LEVEL %q is not a known level; heartbeat will use info)", config.PeriodicLogLevel)
	}

	for _, warning := range config.Warnings {
		sink.Warning("  %s", warning)
	}
	sink.Info("")
}

// RouteInfo contains information about a registered route
type RouteInfo struct {
	Method string
	Path   string
}

// GetRoutes extracts all registered routes from a mux.Router
func GetRoutes(router *mux.Router) ([]RouteInfo, error) {
	var routes []RouteInfo

	err := router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err != nil {
			return err
		}

		methods, err := route.GetMethods()
		if err != nil {
			// Route might not have methods specified
			methods = []string{"*"}
		}

		for _, method := range methods {
			routes = append(routes, RouteInfo{
				Method: method,
				Path:   pathTemplate,
			})
		}

		return nil
	})

	return routes, err
}

// LogHTTPRoutes logs all registered HTTP routes when debug is enabled.
func LogHTTPRoutes(sink *logging.Sink, router *mux.Router, debug bool) {
	sink.Info("------------------------------------------------------------")
	sink.Info("HTTP SERVER SETUP")
	sink.Info("------------------------------------------------------------")

	if debug {
		routes, err := GetRoutes(router)
		if err != nil {
			sink.Warning("error walking routes: %v", err)
		}

		sort.Slice(routes, func(i, j int) bool {
			if routes[i].Path != routes[j].Path {
				return routes[i].Path < routes[j].Path
			}
			return routes[i].Method < routes[j].Method
		})

		sink.Debug("  Registered routes (%d total):", len(routes))
		for _, route := range routes {
			sink.Debug("    %-6s %s", route.Method, route.Path)
		}
	}

	sink.Info("  Log emission:  GET /{level}/{message}/[count]")
	sink.Info("  Crash trigger: GET /crash/[handle]")
	sink.Info("  Valid levels:  %s", strings.Join(logging.ValidLevels(), ", "))
	sink.Info("")
}

// LogServerStarted logs successful server start with endpoint information
func LogServerStarted(sink *logging.Sink, config *Config, startupDuration time.Duration) {
	sink.Info("------------------------------------------------------------")
	sink.Info("SERVER STARTED")
	sink.Info("------------------------------------------------------------")
	sink.Info("  Startup time:  %v", startupDuration)
	sink.Info("  Application:   http://%s", config.Addr())
	if config.MetricsEnabled {
		sink.Info("  Metrics:       http://%s/metrics", config.MetricsAddr())
	} else {
		sink.Info("  Metrics:       DISABLED")
	}
	sink.Info("  Heartbeat:     every %v at %s", config.PeriodicLogInterval, config.PeriodicLogLevel)
	sink.Info("")
	sink.Info("  Press Ctrl+C to stop the server")
	sink.Info("------------------------------------------------------------")
}

// LogShutdownInitiated logs shutdown start
func LogShutdownInitiated(sink *logging.Sink, signal string) {
	sink.Info("")
	sink.Info("------------------------------------------------------------")
	sink.Info("SHUTDOWN INITIATED (received %s)", signal)
	sink.Info("------------------------------------------------------------")
}

// LogShutdownStepComplete logs a completed shutdown step
func LogShutdownStepComplete(sink *logging.Sink, step string) {
	sink.Info("  [OK] %s", step)
}

// LogShutdownComplete logs shutdown completion
func LogShutdownComplete(sink *logging.Sink) {
	sink.Info("  [OK] Shutdown complete")
}
