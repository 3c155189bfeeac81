package content

import "github.com/go-chi/chi/v5"

// Routes builds the knowledge-content router.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}
