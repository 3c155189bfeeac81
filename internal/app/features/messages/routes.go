package messages

import (
	"github.com/go-chi/chi/v5"

	"github.com/rashamuf/museumhub/internal/app/system/auth"
	"github.com/rashamuf/museumhub/internal/domain/models"
)

// Routes builds the admin suggestion inbox router.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireRole(models.RoleAdmin))
	r.Get("/", h.ServeList)
	r.Post("/{id}/status", h.ServeStatus)
	r.Post("/{id}/reply", h.ServeReply)
	r.Post("/{id}/delete", h.ServeDelete)
	return r
}
