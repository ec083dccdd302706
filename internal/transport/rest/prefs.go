package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/verbforms-backend/internal/domain"
)

// prefsService defines the preference operations the handler consumes.
type prefsService interface {
	Get(ctx context.Context) (*domain.UserPreferences, error)
	SetDialect(ctx context.Context, dialect domain.Dialect) (*domain.UserPreferences, error)
	SetDarkMode(ctx context.Context, dark bool) (*domain.UserPreferences, error)
	MarkPremium(ctx context.Context) (*domain.UserPreferences, error)
	Reset(ctx context.Context) (*domain.UserPreferences, error)
}

// PrefsHandler serves user-preference endpoints.
type PrefsHandler struct {
	prefs prefsService
}

// NewPrefsHandler creates a PrefsHandler.
func NewPrefsHandler(prefs prefsService) *PrefsHandler {
	return &PrefsHandler{prefs: prefs}
}

// Get handles GET /v1/preferences.
func (h *PrefsHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.prefs.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// updateRequest carries partial preference updates; absent fields are
// left untouched.
type updateRequest struct {
	Dialect    *string `json:"dialect"`
	IsDarkMode *bool   `json:"isDarkMode"`
}

// Update handles PUT /v1/preferences.
func (h *PrefsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	var (
		p   *domain.UserPreferences
		err error
	)

	if req.Dialect != nil {
		p, err = h.prefs.SetDialect(r.Context(), domain.Dialect(*req.Dialect))
		if err != nil {
			writeError(w, err)
			return
		}
	}
	if req.IsDarkMode != nil {
		p, err = h.prefs.SetDarkMode(r.Context(), *req.IsDarkMode)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	if p == nil {
		// Nothing to change; return current state.
		p, err = h.prefs.Get(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, p)
}

// MarkPremium handles POST /v1/preferences/premium, called after a
// verified one-time purchase.
func (h *PrefsHandler) MarkPremium(w http.ResponseWriter, r *http.Request) {
	p, err := h.prefs.MarkPremium(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Reset handles POST /v1/preferences/reset.
func (h *PrefsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	p, err := h.prefs.Reset(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
