// Package heartbeat implements the periodic log emitter.
//
// A Heartbeat owns one background goroutine that sleeps for a configured
// interval and then writes a single line at a configured severity to the
// shared log sink, forever. It exposes explicit Start/Stop hooks so the
// process lifecycle (and test harnesses) can supervise it, and a status
// snapshot consumed by the health endpoint.
package heartbeat
