package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/verbforms-backend/internal/domain"
)

// searchService defines the search operations the handler consumes.
type searchService interface {
	Search(ctx context.Context, query string) ([]domain.VerbRecord, error)
	GetByID(ctx context.Context, id string) (*domain.VerbRecord, error)
	Count(ctx context.Context) (int, error)
}

// VerbHandler serves verb search and lookup endpoints.
type VerbHandler struct {
	search searchService
}

// NewVerbHandler creates a VerbHandler.
func NewVerbHandler(search searchService) *VerbHandler {
	return &VerbHandler{search: search}
}

// verbResponse is the wire shape of a verb record.
type verbResponse struct {
	ID           string           `json:"id"`
	Base         string           `json:"base"`
	Past         string           `json:"past"`
	Participle   string           `json:"participle"`
	PastUK       string           `json:"pastUK,omitempty"`
	PastUS       string           `json:"pastUS,omitempty"`
	ParticipleUK string           `json:"participleUK,omitempty"`
	ParticipleUS string           `json:"participleUS,omitempty"`
	PronUS       string           `json:"pronUS,omitempty"`
	PronUK       string           `json:"pronUK,omitempty"`
	Meanings     []domain.Meaning `json:"meanings"`
}

func toVerbResponse(rec *domain.VerbRecord) verbResponse {
	return verbResponse{
		ID:           rec.ID,
		Base:         rec.Base,
		Past:         rec.Past,
		Participle:   rec.Participle,
		PastUK:       rec.PastUK,
		PastUS:       rec.PastUS,
		ParticipleUK: rec.ParticipleUK,
		ParticipleUS: rec.ParticipleUS,
		PronUS:       rec.PronunciationUS,
		PronUK:       rec.PronunciationUK,
		Meanings:     rec.Meanings,
	}
}

type searchResponse struct {
	Results []verbResponse `json:"results"`
	Count   int            `json:"count"`
}

// Search handles GET /v1/verbs/search?q=...
// An empty query is not an error, it returns an empty result list.
func (h *VerbHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	recs, err := h.search.Search(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	results := make([]verbResponse, 0, len(recs))
	for i := range recs {
		results = append(results, toVerbResponse(&recs[i]))
	}

	writeJSON(w, http.StatusOK, searchResponse{Results: results, Count: len(results)})
}

// Get handles GET /v1/verbs/{id}.
func (h *VerbHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.search.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if rec == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
		return
	}

	writeJSON(w, http.StatusOK, toVerbResponse(rec))
}

// Count handles GET /v1/verbs/count.
func (h *VerbHandler) Count(w http.ResponseWriter, r *http.Request) {
	n, err := h.search.Count(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}
