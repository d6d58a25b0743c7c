// Package transport exposes the analyze/process pipeline over HTTP for the
// interactive UI layer. It owns request decoding, validation and error
// rendering; all classification semantics live in the pipeline package.
package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"gdreport/internal/config"
	"gdreport/internal/infrastructure"
	"gdreport/internal/pipeline"
)

// NewRouter builds the HTTP router for the report endpoints.
func NewRouter(cfg *config.Config, logger *slog.Logger, processor *pipeline.Processor) http.Handler {
	h := &handler{
		cfg:       cfg,
		logger:    logger,
		processor: processor,
	}

	metrics := infrastructure.NewMetrics()

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.Use(httpMetrics(metrics))
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	if cfg.Server.RateLimit.Enabled {
		r.Use(rateLimit(cfg.Server.RateLimit))
	}

	r.Route("/api/v1/reports", func(r chi.Router) {
		r.Post("/analyze", h.analyze)
		r.Post("/process", h.process)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}
