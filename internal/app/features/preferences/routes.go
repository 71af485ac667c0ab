// internal/app/features/preferences/routes.go
package preferences

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the preferences endpoints.
// The identity middleware is applied where this is mounted.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeGet)
	r.Put("/", h.ServePut)
	return r
}
