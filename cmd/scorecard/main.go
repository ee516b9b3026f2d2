package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GreenGauge-Analytics/Scorecard/internal/api"
	"github.com/GreenGauge-Analytics/Scorecard/internal/benchmark"
	"github.com/GreenGauge-Analytics/Scorecard/internal/config"
	"github.com/GreenGauge-Analytics/Scorecard/internal/esg"
	"github.com/GreenGauge-Analytics/Scorecard/internal/events"
	"github.com/GreenGauge-Analytics/Scorecard/internal/renderer"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Benchmark estimator: loaded once, shared read-only by all requests.
	// A missing model degrades to the heuristic, it never stops the service.
	estimator, estErr := benchmark.New(cfg.Model.Path)
	if estErr != nil {
		logger.Warn("benchmark model unavailable, using heuristic fallback",
			"path", cfg.Model.Path, "error", estErr)
		api.BenchmarkDegraded.Set(1)
	} else {
		logger.Info("benchmark model loaded", "path", cfg.Model.Path)
	}

	engine := esg.NewEngine(estimator, cfg.EngineProfiles(), logger)

	// Events (optional)
	var eventsClient events.Client
	if cfg.Events.URL != "" {
		ec, err := events.NewNATSClient(ctx, cfg.Events.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to event bus, running without events", "error", err)
		} else {
			eventsClient = ec
			defer ec.Close()
			logger.Info("connected to event bus")
			if estErr != nil {
				_ = ec.Publish(events.SubjectBenchmarkDegraded, events.BenchmarkDegradedEvent{
					Reason:    estErr.Error(),
					Timestamp: time.Now().UTC(),
				})
			}
		}
	}

	// Report composer (optional)
	var rendererClient renderer.Client
	if cfg.Renderer.URL != "" {
		rendererClient = renderer.NewHTTPClient(cfg.Renderer.URL, cfg.Renderer.Token)
		logger.Info("report composer configured", "url", cfg.Renderer.URL)
	}

	router := api.NewRouter(engine, rendererClient, eventsClient, cfg.Server.AdminToken, logger)
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: api.NewMetricsRouter(),
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
