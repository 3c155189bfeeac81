package errors

import (
	"net/http"

	"github.com/rashamuf/museumhub/internal/app/features/shared/respond"
)

// Handler serves the access-denied endpoints the route guards redirect to.
type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	respond.Fail(w, http.StatusForbidden, "ليست لديك صلاحية الوصول إلى هذه الصفحة")
}

func (h *Handler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	respond.Fail(w, http.StatusUnauthorized, "يجب تسجيل الدخول أولاً")
}
