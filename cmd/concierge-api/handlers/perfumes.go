package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/scentdesk/concierge/internal/catalog"
	"github.com/scentdesk/concierge/internal/observability"
)

// PerfumeHandler serves the perfume catalog.
type PerfumeHandler struct {
	logger *observability.Logger
	store  *catalog.Store
}

// NewPerfumeHandler creates a new perfume handler.
func NewPerfumeHandler(logger *observability.Logger, store *catalog.Store) *PerfumeHandler {
	return &PerfumeHandler{
		logger: logger,
		store:  store,
	}
}

// List handles GET /perfumes.
func (h *PerfumeHandler) List(w http.ResponseWriter, r *http.Request) {
	perfumes := h.store.Perfumes()
	if perfumes == nil {
		perfumes = []catalog.Perfume{}
	}
	writeJSON(w, http.StatusOK, perfumes)
}

// Get handles GET /perfumes/{perfumeID}.
func (h *PerfumeHandler) Get(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "perfumeID")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid perfume id", err.Error())
		return
	}

	perfume, err := h.store.PerfumeByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrPerfumeNotFound) {
			writeError(w, http.StatusNotFound, "perfume not found", "")
			return
		}
		h.logger.WithContext(r.Context()).Error().Err(err).Int("perfume_id", id).Msg("Lookup failed")
		writeError(w, http.StatusInternalServerError, "lookup failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, perfume)
}

// Categories handles GET /categories.
func (h *PerfumeHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories := h.store.Categories()
	if categories == nil {
		categories = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{
		"categories": categories,
	})
}
