// Package handlers contains the HTTP request handlers for the logger
// service: log emission, the deliberate crash trigger, the demo home
// page, and the health/version endpoints.
//
// Handlers receive their log sink and heartbeat by injection; they hold
// no mutable state of their own, so every handler is safe for concurrent
// requests.
package handlers
