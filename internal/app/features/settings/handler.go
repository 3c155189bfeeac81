package settings

import (
	"context"
	"net/http"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/rashamuf/museumhub/internal/app/features/shared/respond"
	userstore "github.com/rashamuf/museumhub/internal/app/store/users"
	"github.com/rashamuf/museumhub/internal/app/system/auth"
	"github.com/rashamuf/museumhub/internal/app/system/timeouts"
	"github.com/rashamuf/museumhub/internal/domain/models"
)

// Handler serves the account settings screen.
type Handler struct {
	Store    *userstore.Store
	Sanitize *bluemonday.Policy
	Log      *zap.Logger
}

func NewHandler(store *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Sanitize: bluemonday.StrictPolicy(), Log: logger}
}

type profileVM struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Specialty  string `json:"specialty,omitempty"`
	Role       string `json:"role"`
	AuthMethod string `json:"auth_method,omitempty"`
}

func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "يجب تسجيل الدخول أولاً")
		return
	}
	respond.OK(w, profileVM{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Specialty:  u.Specialty,
		Role:       u.Role,
		AuthMethod: u.AuthMethod,
	})
}

// ServeSpecialty updates the member's declared specialty. Privileged admin
// sessions have no backing document, so there is nothing to update for them.
func (h *Handler) ServeSpecialty(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "يجب تسجيل الدخول أولاً")
		return
	}
	if u.AuthMethod == models.AuthMethodAdmin {
		respond.Fail(w, http.StatusForbidden, "حساب المدير لا يملك ملفاً شخصياً")
		return
	}

	if err := r.ParseForm(); err != nil {
		respond.Fail(w, http.StatusBadRequest, "بيانات غير صالحة")
		return
	}
	specialty := strings.TrimSpace(h.Sanitize.Sanitize(r.PostFormValue("specialty")))
	if specialty == "" {
		respond.Fail(w, http.StatusBadRequest, "التخصص مطلوب")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.UpdateSpecialty(ctx, u.ID, specialty); err != nil {
		h.Log.Error("specialty update failed", zap.String("user_id", u.ID), zap.Error(err))
		respond.Fail(w, http.StatusInternalServerError, "تعذر تحديث التخصص")
		return
	}

	respond.Done(w)
}
