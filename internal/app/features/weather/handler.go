// internal/app/features/weather/handler.go
package weather

import (
	"errors"
	"net/http"

	"github.com/dalemusser/pitwall/internal/app/system/jsonutil"
	"github.com/dalemusser/pitwall/internal/app/system/upstream"
	"github.com/dalemusser/pitwall/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the current-weather endpoint.
type Handler struct {
	Weather *upstream.WeatherClient
	Log     *zap.Logger
}

// NewHandler constructs a weather Handler.
func NewHandler(client *upstream.WeatherClient, logger *zap.Logger) *Handler {
	return &Handler{Weather: client, Log: logger}
}

// Serve handles GET /api/weather.
//
// The request must name a location by lat+lon or by city; the upstream is
// not called otherwise. Units defaults to imperial. Upstream failure maps
// to 502 with a generic message. There is no fallback reading.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	q := upstream.WeatherQuery{
		Lat:   r.URL.Query().Get("lat"),
		Lon:   r.URL.Query().Get("lon"),
		City:  r.URL.Query().Get("city"),
		Units: r.URL.Query().Get("units"),
	}

	hasCoords := q.Lat != "" && q.Lon != ""
	if !hasCoords && q.City == "" {
		jsonutil.Error(w, http.StatusBadRequest, "missing location: provide lat and lon, or city")
		return
	}
	if q.Units != "" && !models.IsValidUnits(q.Units) {
		jsonutil.Error(w, http.StatusBadRequest, `units must be "metric" or "imperial"`)
		return
	}

	snap, err := h.Weather.Current(r.Context(), q)
	if err != nil {
		if errors.Is(err, upstream.ErrNotConfigured) {
			h.Log.Error("weather capability not configured")
		} else {
			h.Log.Error("weather fetch failed", zap.Error(err))
		}
		jsonutil.Error(w, http.StatusBadGateway, "Failed to fetch weather data")
		return
	}

	jsonutil.Write(w, http.StatusOK, snap)
}
