// Package middleware provides HTTP middleware for the logger service.
//
// It includes:
//   - Access logging in W3C Extended Log Format, with sanitization of
//     user-controlled fields to prevent log injection
//   - Prometheus request metrics with bounded label cardinality
package middleware
