// Package upstream wraps the external HTTP capabilities the gateway depends
// on: weather lookup, the two race-schedule providers, and the file handler.
//
// Every client authenticates with a static x-api-key header and is bounded
// by a fixed per-capability timeout. Calls are never retried. A caller that
// disconnects does not abort an in-flight upstream call; the call runs to
// its own timeout (the budgets are short and fixed, so the leak is bounded).
package upstream

import (
	"context"
	"errors"
	"net/http"
)

// ErrNotConfigured means the URL or API key for a capability is missing.
// Race-list clients degrade to an empty result instead of returning it.
var ErrNotConfigured = errors.New("upstream capability not configured")

// ErrUnavailable means the upstream call failed: network error, timeout, or
// a non-success status. The underlying detail is logged, never forwarded to
// clients.
var ErrUnavailable = errors.New("upstream unavailable")

// Config carries the endpoint and shared secret for each upstream
// capability. It is assembled once at startup and injected into the
// clients; call sites never read configuration mid-request.
type Config struct {
	WeatherURL    string
	WeatherAPIKey string

	MotoGPURL    string
	MotoGPAPIKey string

	F1URL    string
	F1APIKey string

	FileHandlerURL    string
	FileHandlerAPIKey string
}

// detach strips cancellation from the caller's context so an aborted
// inbound request does not cancel the upstream call mid-flight. The
// client's own timeout still applies.
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

// apiKeyHeader is the shared-secret header every upstream expects.
const apiKeyHeader = "x-api-key"

func setAPIKey(req *http.Request, key string) {
	req.Header.Set(apiKeyHeader, key)
}
