package dashboard

import (
	"github.com/go-chi/chi/v5"

	"github.com/rashamuf/museumhub/internal/app/system/auth"
	"github.com/rashamuf/museumhub/internal/domain/models"
)

// Routes builds the admin overview router.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireRole(models.RoleAdmin))
	r.Get("/", h.ServeStats)
	return r
}
