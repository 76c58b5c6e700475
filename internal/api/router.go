package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/iammorganparry/brainstorm/internal/ideas"
	"github.com/iammorganparry/brainstorm/internal/sessions"
)

// NewRouter creates the Chi router with all routes and middleware.
func NewRouter(
	ideaSvc *ideas.Service,
	sessionSvc *sessions.Service,
	count SessionCounter,
	apiKey string,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (runs on ALL routes including /health)
	r.Use(CORS)
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recovery(logger))

	healthH := NewHealthHandler(count)
	ideaH := NewIdeaHandler(ideaSvc, logger)
	sessionH := NewSessionHandler(sessionSvc, logger)

	r.Get("/health", healthH.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(BearerAuth(apiKey))

		r.Route("/ideas", func(r chi.Router) {
			r.Post("/", ideaH.Create)
			r.Get("/forsession/{sessionId:[0-9]+}", ideaH.ForSession)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", sessionH.List)
			r.Post("/", sessionH.Create)
			r.Get("/{id:[0-9]+}", sessionH.Get)
		})
	})

	return r
}
