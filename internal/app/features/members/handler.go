package members

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/rashamuf/museumhub/internal/app/derive"
	"github.com/rashamuf/museumhub/internal/app/features/shared/respond"
	userstore "github.com/rashamuf/museumhub/internal/app/store/users"
	"github.com/rashamuf/museumhub/internal/app/system/normalize"
	"github.com/rashamuf/museumhub/internal/app/system/timeouts"
	"github.com/rashamuf/museumhub/internal/domain/models"
)

// Cache is the slice of the live snapshot store this feature reads.
type Cache interface {
	Users() []models.User
}

// Handler serves the admin member directory: searchable listing and the
// ban/unban toggle. Admin accounts are immutable through this surface.
type Handler struct {
	Cache Cache
	Store *userstore.Store
	Log   *zap.Logger
}

func NewHandler(cache Cache, store *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Cache: cache, Store: store, Log: logger}
}

type memberVM struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Specialty string     `json:"specialty,omitempty"`
	Role      string     `json:"role"`
	IsBanned  bool       `json:"is_banned"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /members – searchable directory                                        |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	search := normalize.QueryParam(query.Get(r, "q"))

	filtered := derive.MergeAndFilter(h.Cache.Users(), nil, derive.UserAccessors,
		derive.Query{Search: search})

	items := make([]memberVM, 0, len(filtered))
	for _, u := range filtered {
		items = append(items, memberVM{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Specialty: u.Specialty,
			Role:      u.Role,
			IsBanned:  u.IsBanned,
			CreatedAt: u.CreatedAt,
			LastLogin: u.LastLogin,
		})
	}
	respond.OK(w, struct {
		Items []memberVM `json:"items"`
		Total int        `json:"total"`
	}{items, len(items)})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /members/{id}/ban – toggle the ban flag on a member account           |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeBan(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respond.Fail(w, http.StatusBadRequest, "بيانات غير صالحة")
		return
	}

	id := chi.URLParam(r, "id")
	banned := r.PostFormValue("banned") == "true"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err := h.Store.SetBanned(ctx, id, banned)
	switch {
	case errors.Is(err, userstore.ErrAdminImmutable):
		respond.Fail(w, http.StatusForbidden, "لا يمكن حظر حساب مدير")
		return
	case errors.Is(err, mongo.ErrNoDocuments):
		respond.Fail(w, http.StatusNotFound, "العضو غير موجود")
		return
	case err != nil:
		h.Log.Error("ban toggle failed", zap.String("user_id", id), zap.Error(err))
		respond.Fail(w, http.StatusInternalServerError, "تعذر تحديث حالة العضو")
		return
	}

	h.Log.Info("member ban toggled",
		zap.String("user_id", id),
		zap.Bool("banned", banned))
	respond.OK(w, struct {
		OK     bool `json:"ok"`
		Banned bool `json:"banned"`
	}{true, banned})
}
