package courses

import (
	"github.com/go-chi/chi/v5"

	"github.com/rashamuf/museumhub/internal/app/system/auth"
	"github.com/rashamuf/museumhub/internal/domain/models"
)

// Routes builds the learning-resources router.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.With(auth.RequireSignedIn).Post("/", h.ServeCreate)
	r.With(auth.RequireSignedIn).Post("/{id}/like", h.ServeLike)
	r.With(auth.RequireSignedIn).Post("/{id}/bookmark", h.ServeBookmark)
	r.Post("/{id}/view", h.ServeView)
	r.With(auth.RequireRole(models.RoleAdmin)).Post("/{id}/delete", h.ServeDelete)
	return r
}
