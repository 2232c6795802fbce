// Package http exposes the match engine over HTTP: structured matching,
// RFQ extraction, health and metrics.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/supplyai/matchengine/internal/application"
	"github.com/supplyai/matchengine/internal/config"
	"github.com/supplyai/matchengine/internal/middleware"
)

// NewRouter assembles the service routes with the standard middleware
// stack. The supervisor may lack an extractor; the RFQ endpoint then
// reports the feature unavailable.
func NewRouter(cfg config.Config, logger zerolog.Logger, engine *application.Engine, supervisor *application.Supervisor) http.Handler {
	h := &handler{
		engine:     engine,
		supervisor: supervisor,
		logger:     logger.With().Str("component", "http").Logger(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))

	r.Get("/healthz", h.health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/match", h.match)
		r.Post("/rfq", h.rfq)
	})

	return r
}
