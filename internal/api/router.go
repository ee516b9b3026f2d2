package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GreenGauge-Analytics/Scorecard/internal/esg"
	"github.com/GreenGauge-Analytics/Scorecard/internal/events"
	"github.com/GreenGauge-Analytics/Scorecard/internal/renderer"
)

func NewRouter(engine *esg.Engine, rc renderer.Client, ec events.Client, adminToken string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	stats := newStats()
	scores := NewScoresHandler(engine, rc, ec, stats, logger)
	extract := NewExtractHandler(ec, stats, logger)
	admin := NewAdminHandler(stats)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/scores", scores.Create)
		r.Post("/scores/report", scores.Report)
		r.Post("/extract", extract.Extract)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.Get("/stats", admin.Stats)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
