// Package rest is the device-facing HTTP surface over the core services.
package rest

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/verbforms-backend/internal/config"
	"github.com/heartmarshall/verbforms-backend/internal/transport/middleware"
)

// NewRouter assembles the chi router with the standard middleware chain
// and all endpoint handlers.
func NewRouter(
	logger *slog.Logger,
	corsCfg config.CORSConfig,
	verbs *VerbHandler,
	prefs *PrefsHandler,
	health *HealthHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(corsCfg),
	))

	r.Get("/live", health.Live)
	r.Get("/ready", health.Ready)
	r.Get("/health", health.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/verbs", func(r chi.Router) {
			r.Get("/search", verbs.Search)
			r.Get("/count", verbs.Count)
			r.Get("/{id}", verbs.Get)
		})

		r.Route("/preferences", func(r chi.Router) {
			r.Get("/", prefs.Get)
			r.Put("/", prefs.Update)
			r.Post("/premium", prefs.MarkPremium)
			r.Post("/reset", prefs.Reset)
		})
	})

	return r
}
