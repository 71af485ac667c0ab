// Package timeouts provides centralized timeout values for handler and
// upstream operations.
//
// These values bound context.WithTimeout for store operations and cap the
// HTTP clients that talk to upstream capabilities. Keeping them in one place
// makes the fixed per-capability budgets easy to audit: reads against any
// upstream get the Read budget, uploads get the longer Upload budget, and
// nothing in a request path waits longer than that.
package timeouts

import "time"

const (
	// Ping bounds health checks and connectivity verification.
	Ping = 2 * time.Second

	// Store bounds single-document reads and writes against MongoDB.
	Store = 5 * time.Second

	// Read bounds read-style upstream calls: weather lookups, race-list
	// fetches, and file deletes.
	Read = 10 * time.Second

	// Upload bounds file uploads to the file-handler upstream, which carry
	// the payload in the request body and need more headroom.
	Upload = 30 * time.Second
)
