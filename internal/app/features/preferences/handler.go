// internal/app/features/preferences/handler.go
package preferences

import (
	"context"
	"encoding/json"
	"net/http"

	prefstore "github.com/dalemusser/pitwall/internal/app/store/preferences"
	"github.com/dalemusser/pitwall/internal/app/system/identity"
	"github.com/dalemusser/pitwall/internal/app/system/jsonutil"
	"github.com/dalemusser/pitwall/internal/app/system/timeouts"
	"github.com/dalemusser/pitwall/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the user-preferences endpoints.
type Handler struct {
	Prefs *prefstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a preferences Handler.
func NewHandler(prefs *prefstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Prefs: prefs, Log: logger}
}

// ServeGet handles GET /api/preferences.
//
// A user with no stored document gets a deterministic default document
// (not persisted); this is the one place synthetic defaults are allowed.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.CurrentUserID(r)
	if !ok {
		jsonutil.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Store)
	defer cancel()

	prefs, err := h.Prefs.Get(ctx, userID)
	if err == prefstore.ErrNotFound {
		// Synthetic defaults carry no lifecycle timestamps: the document
		// does not exist until the user writes it.
		def := models.DefaultPreferences(userID)
		jsonutil.Write(w, http.StatusOK, map[string]any{
			"userId":           def.UserID,
			"favoriteTeams":    def.FavoriteTeams,
			"notifications":    def.Notifications,
			"theme":            def.Theme,
			"measurementUnits": def.MeasurementUnits,
		})
		return
	}
	if err != nil {
		h.Log.Error("preferences get failed", zap.String("user_id", userID), zap.Error(err))
		jsonutil.Error(w, http.StatusInternalServerError, "Failed to fetch preferences")
		return
	}

	jsonutil.Write(w, http.StatusOK, prefs)
}

// ServePut handles PUT /api/preferences.
//
// The body is a partial preferences document; only supplied fields are
// written. The upsert is always scoped to the verified identity; any user
// id claimed in the body is ignored. The resulting full document is
// returned.
func (h *Handler) ServePut(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity.CurrentUserID(r)
	if !ok {
		jsonutil.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var upd models.PreferencesUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		jsonutil.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if upd.Theme != nil && !models.IsValidTheme(*upd.Theme) {
		jsonutil.Error(w, http.StatusBadRequest, `theme must be "light" or "dark"`)
		return
	}
	if upd.MeasurementUnits != nil && !models.IsValidUnits(*upd.MeasurementUnits) {
		jsonutil.Error(w, http.StatusBadRequest, `measurementUnits must be "metric" or "imperial"`)
		return
	}
	if upd.FavoriteTeams != nil {
		deduped := dedupeTeams(*upd.FavoriteTeams)
		upd.FavoriteTeams = &deduped
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Store)
	defer cancel()

	prefs, err := h.Prefs.Upsert(ctx, userID, upd)
	if err != nil {
		h.Log.Error("preferences upsert failed", zap.String("user_id", userID), zap.Error(err))
		jsonutil.Error(w, http.StatusInternalServerError, "Failed to update preferences")
		return
	}

	jsonutil.Write(w, http.StatusOK, prefs)
}

// dedupeTeams drops exact-match duplicates while preserving insertion
// order. Duplicate prevention is the writer's job, not the store's.
func dedupeTeams(teams []string) []string {
	seen := make(map[string]struct{}, len(teams))
	out := make([]string, 0, len(teams))
	for _, team := range teams {
		if _, dup := seen[team]; dup {
			continue
		}
		seen[team] = struct{}{}
		out = append(out, team)
	}
	return out
}
