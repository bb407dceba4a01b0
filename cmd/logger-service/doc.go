// Package main provides the entry point for the Logger Service.
//
// Logger Service is a small HTTP utility for generating log traffic on
// demand. It exposes endpoints that emit log lines at a requested
// severity (optionally repeated), a debug endpoint that deliberately
// triggers a division-by-zero fault, and a background heartbeat that
// emits one log line on a fixed interval.
//
// # Application Lifecycle
//
// The application follows a structured initialization sequence:
//
//  1. Configuration Loading: Reads environment variables; invalid values
//     fall back to defaults with a warning
//  2. Sink Construction: One log sink writing to stdout, injected into
//     every component that logs
//  3. Heartbeat: The periodic emitter is started as a supervised
//     background goroutine
//  4. HTTP Server Setup: Configures routes, middleware, and starts the
//     main and metrics listeners
//  5. Graceful Shutdown: Handles SIGINT/SIGTERM, stops the heartbeat
//     and both listeners cleanly
//
// # HTTP Surface
//
//	GET /{level}/{message}/            - emit one line at the given level
//	GET /{level}/{message}/{count}     - emit count lines
//	GET /crash/                        - deliberate division fault, caught
//	GET /crash/{handle}                - 'false', 'f', 'no', 'n' or 'fail'
//	                                     re-raises the fault instead
//	GET /                              - demo UI and documentation
//	GET /health, /healthz              - health status with heartbeat info
//	GET /livez, /readyz                - liveness/readiness probes
//	GET /version                       - build information
//
// The metrics listener (default port 9090) serves Prometheus metrics at
// /metrics.
//
// # Environment Variables
//
//   - PERIODIC_LOG_LEVEL: heartbeat severity (default: INFO; unknown
//     values silently fall back to info)
//   - PERIODIC_LOG_MESSAGE: heartbeat message (default: System heartbeat)
//   - PERIODIC_LOG_INTERVAL: heartbeat interval in seconds (default: 10)
//   - HOST: bind address (default: 0.0.0.0)
//   - PORT: main listener port (default: 5000)
//   - DEBUG: debug logging and startup route dump (default: false)
//   - METRICS_PORT: metrics listener port (default: 9090)
//   - METRICS_ENABLED: metrics listener toggle (default: true)
//   - LOG_HEALTH_CHECKS: access-log health probes (default: false)
//
// # Related Packages
//
//   - [logger-service/internal/logging]: severity type and the log sink
//   - [logger-service/internal/heartbeat]: the periodic emitter
//   - [logger-service/internal/handlers]: HTTP request handlers
//   - [logger-service/internal/middleware]: access logging and metrics
//   - [logger-service/internal/startup]: configuration and lifecycle logging
package main
