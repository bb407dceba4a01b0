// Package metrics defines the Prometheus metrics exported by the logger
// service: HTTP request counts and latencies, log lines emitted per level
// and source, heartbeat activity, and deliberate crash counts.
//
// Metrics are registered with the default registry via promauto and served
// by the metrics listener configured in main.
package metrics
