// Package startup handles configuration loading and startup/shutdown
// logging for the logger service.
//
// Configuration is read once from environment variables at process start
// and is immutable afterwards. Invalid values fall back to defaults with
// a warning; an unrecognized PERIODIC_LOG_LEVEL is passed through
// unchanged because the heartbeat resolves it (falling back to info)
// itself.
package startup
