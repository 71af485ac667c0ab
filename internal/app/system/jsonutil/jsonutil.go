// Package jsonutil holds the small helpers every JSON endpoint shares:
// writing a response body and writing the uniform error envelope.
package jsonutil

import (
	"encoding/json"
	"net/http"
)

// Write encodes v as the JSON response body with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the uniform error envelope {"error": msg}.
// msg must be safe to show to clients; upstream and store detail stays in
// the logs.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, map[string]string{"error": msg})
}
