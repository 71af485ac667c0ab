// internal/app/system/upstream/races.go
package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/dalemusser/pitwall/internal/app/system/timeouts"
	"github.com/dalemusser/pitwall/internal/domain/models"
	"go.uber.org/zap"
)

// raceProvider calls one race-schedule upstream. Providers are deliberately
// degrade-not-fail: a failed or unconfigured provider contributes an empty
// list so the other series still renders.
type raceProvider struct {
	name   string
	url    string
	apiKey string
	client *http.Client
	log    *zap.Logger
}

func newRaceProvider(name, url, apiKey string, logger *zap.Logger) *raceProvider {
	return &raceProvider{
		name:   name,
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeouts.Read},
		log:    logger,
	}
}

// fetch returns the provider's upcoming races, or an empty slice on any
// failure. It never returns an error.
func (p *raceProvider) fetch(ctx context.Context) []models.Race {
	if p.url == "" || p.apiKey == "" {
		p.log.Warn("race provider not configured, returning empty schedule",
			zap.String("provider", p.name))
		return []models.Race{}
	}

	req, err := http.NewRequestWithContext(detach(ctx), http.MethodGet, p.url, nil)
	if err != nil {
		p.log.Warn("race provider request build failed",
			zap.String("provider", p.name), zap.Error(err))
		return []models.Race{}
	}
	setAPIKey(req, p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Warn("race provider call failed",
			zap.String("provider", p.name), zap.Error(err))
		return []models.Race{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.log.Warn("race provider returned non-OK status",
			zap.String("provider", p.name), zap.Int("status", resp.StatusCode))
		return []models.Race{}
	}

	var races []models.Race
	if err := json.NewDecoder(resp.Body).Decode(&races); err != nil {
		p.log.Warn("race provider returned malformed body",
			zap.String("provider", p.name), zap.Error(err))
		return []models.Race{}
	}
	if races == nil {
		races = []models.Race{}
	}
	return races
}

// Races aggregates the MotoGP and F1 providers.
type Races struct {
	motogp *raceProvider
	f1     *raceProvider
}

// NewRaces creates the race-schedule aggregator from the upstream config.
func NewRaces(cfg Config, logger *zap.Logger) *Races {
	return &Races{
		motogp: newRaceProvider("motogp", cfg.MotoGPURL, cfg.MotoGPAPIKey, logger),
		f1:     newRaceProvider("f1", cfg.F1URL, cfg.F1APIKey, logger),
	}
}

// Upcoming fetches both schedules concurrently and joins the results. A
// slow or failing provider never delays or empties the other's list, and
// the board itself never fails.
func (r *Races) Upcoming(ctx context.Context) models.RaceBoard {
	var board models.RaceBoard

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		board.MotoGP = r.motogp.fetch(ctx)
	}()
	go func() {
		defer wg.Done()
		board.F1 = r.f1.fetch(ctx)
	}()
	wg.Wait()

	return board
}
