package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logger-service/internal/handlers"
	"logger-service/internal/heartbeat"
	"logger-service/internal/logging"
	"logger-service/internal/metrics"
	"logger-service/internal/middleware"
	"logger-service/internal/startup"
)

func main() {
	startTime := time.Now()

	// Load configuration
	config := startup.LoadConfig()

	// Single process-wide sink, injected everywhere that logs
	sink := logging.New(os.Stdout)
	startup.LogStartup(sink, config)

	metrics.InitializeMetrics()

	// Periodic heartbeat emitter
	hb := heartbeat.New(sink, config.PeriodicLogLevel, config.PeriodicLogMessage, config.PeriodicLogInterval)

	// Handlers and router
	h := handlers.New(sink, hb)
	router := h.Router()
	startup.LogHTTPRoutes(sink, router, config.Debug)

	// Apply access logging middleware
	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogHealthChecks = config.LogHealthChecks
	loggedHandler := middleware.Logger(sink, loggingConfig)(router)

	// Apply metrics middleware
	handler := middleware.Metrics(middleware.DefaultMetricsConfig())(loggedHandler)

	// Create server
	srv := &http.Server{
		Addr:         config.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	// Metrics listener on its own port
	var metricsSrv *http.Server
	if config.MetricsEnabled {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", h.MetricsHandler())
		metricsSrv = &http.Server{
			Addr:        config.MetricsAddr(),
			Handler:     metricsMux,
			ReadTimeout: 15 * time.Second,
		}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != http.ErrServerClosed {
				sink.Error("Metrics server error: %v", err)
			}
		}()
	}

	// Start heartbeat emitter
	hb.Start()

	// Start graceful shutdown handler
	go handleShutdown(sink, srv, metricsSrv, hb)

	// Start server
	startup.LogServerStarted(sink, config, time.Since(startTime))
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		sink.Critical("Server error: %v", err)
		os.Exit(1)
	}
}

func handleShutdown(sink *logging.Sink, srv, metricsSrv *http.Server, hb *heartbeat.Heartbeat) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	startup.LogShutdownInitiated(sink, sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	hb.Stop()
	startup.LogShutdownStepComplete(sink, "Heartbeat stopped")

	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(ctx); err != nil {
			sink.Warning("Metrics server shutdown error: %v", err)
		} else {
			startup.LogShutdownStepComplete(sink, "Metrics server stopped")
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		sink.Warning("Server shutdown error: %v", err)
	} else {
		startup.LogShutdownStepComplete(sink, "HTTP server stopped")
	}

	startup.LogShutdownComplete(sink)
}
