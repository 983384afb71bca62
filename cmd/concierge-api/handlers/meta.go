package handlers

import (
	"net/http"
	"time"

	"github.com/scentdesk/concierge/internal/catalog"
	"github.com/scentdesk/concierge/internal/observability"
)

// MetaHandler serves service information and health.
type MetaHandler struct {
	logger *observability.Logger
	store  *catalog.Store
}

// NewMetaHandler creates a new meta handler.
func NewMetaHandler(logger *observability.Logger, store *catalog.Store) *MetaHandler {
	return &MetaHandler{
		logger: logger,
		store:  store,
	}
}

// Root handles GET / and describes the service.
func (h *MetaHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service":        "Perfume Store AI Bot",
		"version":        "2.0",
		"perfumes_count": h.store.NumPerfumes(),
		"faqs_count":     h.store.NumFAQs(),
		"intents_count":  h.store.NumIntents(),
		"endpoints": map[string]string{
			"GET /":              "This information",
			"POST /chat":         "Chat with AI bot",
			"GET /perfumes":      "Get all perfumes",
			"GET /perfumes/{id}": "Get specific perfume",
			"GET /categories":    "Get all categories",
		},
	})
}

// Health handles GET /health.
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":          "healthy",
		"perfumes_loaded": h.store.HasPerfumes(),
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
}
