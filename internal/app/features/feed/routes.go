package feed

import (
	"github.com/go-chi/chi/v5"

	"github.com/rashamuf/museumhub/internal/app/system/auth"
	"github.com/rashamuf/museumhub/internal/domain/models"
)

// Routes builds the reading feed router.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeFeed)
	r.Get("/{id}", h.ServeDetail)
	r.With(auth.RequireSignedIn).Post("/{id}/comments", h.ServeComment)
	r.With(auth.RequireSignedIn).Post("/comments/{id}/like", h.ServeCommentLike)
	r.With(auth.RequireRole(models.RoleAdmin)).Post("/comments/{id}/delete", h.ServeCommentDelete)
	return r
}
