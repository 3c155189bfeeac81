package quotes

import (
	"github.com/go-chi/chi/v5"

	"github.com/rashamuf/museumhub/internal/app/system/auth"
)

// Routes builds the quotes wall router.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.With(auth.RequireSignedIn).Post("/", h.ServeCreate)
	r.With(auth.RequireSignedIn).Post("/{id}/delete", h.ServeDelete)
	return r
}
