// internal/app/features/races/routes.go
package races

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the race-schedule endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/upcoming", h.ServeUpcoming)
	return r
}
