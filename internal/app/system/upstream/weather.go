// internal/app/system/upstream/weather.go
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dalemusser/pitwall/internal/app/system/timeouts"
	"github.com/dalemusser/pitwall/internal/domain/models"
	"go.uber.org/zap"
)

// WeatherQuery names a location either by coordinates or by city, plus the
// unit system the snapshot should be expressed in.
type WeatherQuery struct {
	Lat   string
	Lon   string
	City  string
	Units string // metric | imperial; empty defaults to imperial
}

// WeatherClient calls the weather upstream. A failed or misconfigured call
// is an error for the caller: a wrong or default reading would mislead the
// user, so there is no silent fallback.
type WeatherClient struct {
	url    string
	apiKey string
	client *http.Client
	log    *zap.Logger
}

// NewWeatherClient creates a weather client from the upstream config.
func NewWeatherClient(cfg Config, logger *zap.Logger) *WeatherClient {
	return &WeatherClient{
		url:    cfg.WeatherURL,
		apiKey: cfg.WeatherAPIKey,
		client: &http.Client{Timeout: timeouts.Read},
		log:    logger,
	}
}

// Current fetches a normalized weather snapshot for the queried location.
func (c *WeatherClient) Current(ctx context.Context, q WeatherQuery) (*models.WeatherSnapshot, error) {
	if c.url == "" || c.apiKey == "" {
		return nil, fmt.Errorf("weather: %w", ErrNotConfigured)
	}

	params := url.Values{}
	if q.Lat != "" && q.Lon != "" {
		params.Set("lat", q.Lat)
		params.Set("lon", q.Lon)
	} else if q.City != "" {
		params.Set("city", q.City)
	}
	units := q.Units
	if units == "" {
		units = models.UnitsImperial
	}
	params.Set("units", units)

	req, err := http.NewRequestWithContext(detach(ctx), http.MethodGet, c.url+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("weather: build request: %w", err)
	}
	setAPIKey(req, c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("weather upstream call failed", zap.Error(err))
		return nil, fmt.Errorf("weather: %w", ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("weather upstream returned non-OK status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("weather: status %d: %w", resp.StatusCode, ErrUnavailable)
	}

	var snap models.WeatherSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		c.log.Warn("weather upstream returned malformed body", zap.Error(err))
		return nil, fmt.Errorf("weather: decode: %w", ErrUnavailable)
	}
	return &snap, nil
}
