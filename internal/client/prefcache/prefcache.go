// Package prefcache is the preference cache used by dashboard clients: it
// holds the last-fetched preference document, applies edits locally, and
// writes the document back only on an explicit save.
//
// The cache follows the lifecycle
//
//	Unloaded → Loading → {Loaded, LoadFailed}
//
// and, from a loaded state, Save runs Saving → {Loaded, SaveFailed}. A
// failed save keeps the locally edited document so nothing is retyped; Save
// can simply be called again. A failed load falls back to an editable
// default document, with the failure still visible through State.
//
// The cache models a single user's UI session and is not safe for
// concurrent use.
package prefcache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/dalemusser/pitwall/internal/app/system/timeouts"
	"github.com/dalemusser/pitwall/internal/domain/models"
)

// State is the cache lifecycle state.
type State int

const (
	StateUnloaded State = iota
	StateLoading
	StateLoaded
	StateLoadFailed
	StateSaving
	StateSaveFailed
)

// String returns the state name for logs and test failures.
func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateLoadFailed:
		return "load-failed"
	case StateSaving:
		return "saving"
	case StateSaveFailed:
		return "save-failed"
	}
	return "unknown"
}

// Cache is a client-side preference document with deferred persistence.
type Cache struct {
	baseURL string
	token   string
	client  *http.Client

	state State
	prefs models.UserPreferences
	dirty bool
}

// New creates a cache talking to the gateway at baseURL. token is the
// bearer token of the acting user.
func New(baseURL, token string) *Cache {
	return &Cache{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeouts.Read},
		state:   StateUnloaded,
	}
}

// State returns the current lifecycle state.
func (c *Cache) State() State { return c.state }

// Dirty reports whether local edits have not been saved.
func (c *Cache) Dirty() bool { return c.dirty }

// Preferences returns a copy of the local document.
func (c *Cache) Preferences() models.UserPreferences {
	p := c.prefs
	p.FavoriteTeams = append([]string(nil), c.prefs.FavoriteTeams...)
	return p
}

// Load fetches the preference document from the gateway.
//
// On failure the cache holds an editable default document and reports
// StateLoadFailed, so the UI can distinguish "failed to load" from "no
// data yet" and offer a retry without blocking edits.
func (c *Cache) Load(ctx context.Context) error {
	c.state = StateLoading

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/preferences", nil)
	if err != nil {
		c.failLoad()
		return fmt.Errorf("prefcache: build request: %w", err)
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		c.failLoad()
		return fmt.Errorf("prefcache: load: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.failLoad()
		return fmt.Errorf("prefcache: load: status %d", resp.StatusCode)
	}

	var prefs models.UserPreferences
	if err := json.NewDecoder(resp.Body).Decode(&prefs); err != nil {
		c.failLoad()
		return fmt.Errorf("prefcache: decode: %w", err)
	}
	if prefs.FavoriteTeams == nil {
		prefs.FavoriteTeams = []string{}
	}

	c.prefs = prefs
	c.dirty = false
	c.state = StateLoaded
	return nil
}

func (c *Cache) failLoad() {
	c.prefs = models.DefaultPreferences("")
	c.dirty = false
	c.state = StateLoadFailed
}

// AddTeam appends a team to the local document. The name is trimmed; an
// exact-match duplicate or an empty name is a no-op.
func (c *Cache) AddTeam(name string) {
	if !c.editable() {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	for _, t := range c.prefs.FavoriteTeams {
		if t == name {
			return
		}
	}
	c.prefs.FavoriteTeams = append(c.prefs.FavoriteTeams, name)
	c.dirty = true
}

// RemoveTeam removes a team from the local document. A team that is not
// present is a no-op.
func (c *Cache) RemoveTeam(name string) {
	if !c.editable() {
		return
	}
	for i, t := range c.prefs.FavoriteTeams {
		if t == name {
			c.prefs.FavoriteTeams = append(c.prefs.FavoriteTeams[:i], c.prefs.FavoriteTeams[i+1:]...)
			c.dirty = true
			return
		}
	}
}

// SetTheme updates the local theme. Invalid values are ignored.
func (c *Cache) SetTheme(theme string) {
	if !c.editable() || !models.IsValidTheme(theme) || c.prefs.Theme == theme {
		return
	}
	c.prefs.Theme = theme
	c.dirty = true
}

// SetUnits updates the local measurement units. Invalid values are ignored.
func (c *Cache) SetUnits(units string) {
	if !c.editable() || !models.IsValidUnits(units) || c.prefs.MeasurementUnits == units {
		return
	}
	c.prefs.MeasurementUnits = units
	c.dirty = true
}

// SetNotifications updates the local notifications flag.
func (c *Cache) SetNotifications(on bool) {
	if !c.editable() || c.prefs.Notifications == on {
		return
	}
	c.prefs.Notifications = on
	c.dirty = true
}

// editable reports whether local edits are allowed: any state that holds a
// document, including the post-failure ones.
func (c *Cache) editable() bool {
	switch c.state {
	case StateLoaded, StateLoadFailed, StateSaveFailed:
		return true
	}
	return false
}

// Save writes the local document back through the gateway.
//
// Failure keeps the edited document and leaves the cache in StateSaveFailed;
// calling Save again retries with the same edits.
func (c *Cache) Save(ctx context.Context) error {
	if !c.editable() {
		return fmt.Errorf("prefcache: nothing to save in state %s", c.state)
	}
	c.state = StateSaving

	body, err := json.Marshal(c.prefs)
	if err != nil {
		c.state = StateSaveFailed
		return fmt.Errorf("prefcache: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/api/preferences", bytes.NewReader(body))
	if err != nil {
		c.state = StateSaveFailed
		return fmt.Errorf("prefcache: build request: %w", err)
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.state = StateSaveFailed
		return fmt.Errorf("prefcache: save: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.state = StateSaveFailed
		return fmt.Errorf("prefcache: save: status %d", resp.StatusCode)
	}

	var saved models.UserPreferences
	if err := json.NewDecoder(resp.Body).Decode(&saved); err == nil {
		if saved.FavoriteTeams == nil {
			saved.FavoriteTeams = []string{}
		}
		c.prefs = saved
	}

	c.dirty = false
	c.state = StateLoaded
	return nil
}

func (c *Cache) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
