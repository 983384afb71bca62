// Package main provides the API router setup.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/scentdesk/concierge/cmd/concierge-api/handlers"
	"github.com/scentdesk/concierge/cmd/concierge-api/middleware"
	"github.com/scentdesk/concierge/internal/catalog"
	"github.com/scentdesk/concierge/internal/config"
	"github.com/scentdesk/concierge/internal/dialog"
	"github.com/scentdesk/concierge/internal/observability"
)

// NewRouter creates the main API router with all routes configured.
func NewRouter(logger *observability.Logger, cfg *config.Config, store *catalog.Store) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	if cfg.Server.RateLimit.Enabled {
		r.Use(middleware.RateLimit(logger, middleware.RateLimitConfig{
			RequestsPerSecond: cfg.Server.RateLimit.RequestsPerSecond,
			Burst:             cfg.Server.RateLimit.Burst,
		}))
	}
	r.Use(chimiddleware.Timeout(cfg.Server.RequestTimeout))

	// Dialog pipeline shared by all chat requests
	responder := dialog.NewResponder(store, nil)
	suggester := dialog.NewSuggestionBuilder(store)

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(logger, responder, suggester)
	perfumeHandler := handlers.NewPerfumeHandler(logger, store)
	metaHandler := handlers.NewMetaHandler(logger, store)

	r.Get("/", metaHandler.Root)
	r.Get("/health", metaHandler.Health)
	r.Post("/chat", chatHandler.Chat)
	r.Get("/perfumes", perfumeHandler.List)
	r.Get("/perfumes/{perfumeID}", perfumeHandler.Get)
	r.Get("/categories", perfumeHandler.Categories)

	return r
}
