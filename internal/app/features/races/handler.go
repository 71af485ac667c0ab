// internal/app/features/races/handler.go
package races

import (
	"net/http"

	"github.com/dalemusser/pitwall/internal/app/system/jsonutil"
	"github.com/dalemusser/pitwall/internal/app/system/upstream"
	"go.uber.org/zap"
)

// Handler serves the upcoming-races endpoint.
type Handler struct {
	Races *upstream.Races
	Log   *zap.Logger
}

// NewHandler constructs a races Handler.
func NewHandler(races *upstream.Races, logger *zap.Logger) *Handler {
	return &Handler{Races: races, Log: logger}
}

// ServeUpcoming handles GET /api/races/upcoming.
//
// Both providers are queried concurrently; a failing or unconfigured
// provider contributes an empty list. The endpoint never hard-fails on a
// provider's account.
func (h *Handler) ServeUpcoming(w http.ResponseWriter, r *http.Request) {
	board := h.Races.Upcoming(r.Context())
	jsonutil.Write(w, http.StatusOK, board)
}
