// internal/app/features/weather/routes.go
package weather

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the weather endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	return r
}
