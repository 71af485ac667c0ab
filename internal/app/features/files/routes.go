// internal/app/features/files/routes.go
package files

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the file endpoints.
// The identity middleware is applied where this is mounted.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/upload", h.ServeUpload)
	r.Delete("/{fileID}", h.ServeDelete)
	return r
}
