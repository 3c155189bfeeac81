package quotes

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/rashamuf/museumhub/internal/app/derive"
	"github.com/rashamuf/museumhub/internal/app/features/shared/respond"
	quotestore "github.com/rashamuf/museumhub/internal/app/store/quotes"
	"github.com/rashamuf/museumhub/internal/app/system/auth"
	"github.com/rashamuf/museumhub/internal/app/system/timeouts"
	"github.com/rashamuf/museumhub/internal/domain/models"
)

// Cache is the slice of the live snapshot store this feature reads.
type Cache interface {
	Quotes() []models.Quote
}

// Handler serves the quotes wall: the bundled sayings plus member-added
// ones. Bundled and default quotes cannot be removed.
type Handler struct {
	Cache    Cache
	Seed     []models.Quote
	Store    *quotestore.Store
	Sanitize *bluemonday.Policy
	Log      *zap.Logger
}

func NewHandler(cache Cache, seedQuotes []models.Quote, store *quotestore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Cache:    cache,
		Seed:     seedQuotes,
		Store:    store,
		Sanitize: bluemonday.StrictPolicy(),
		Log:      logger,
	}
}

type quoteVM struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	AddedBy   string    `json:"added_by,omitempty"`
	Removable bool      `json:"removable"`
	CreatedAt time.Time `json:"created_at"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /quotes                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	merged := derive.MergeAndFilter(h.Cache.Quotes(), h.Seed, derive.QuoteAccessors, derive.Query{})

	u, signedIn := auth.CurrentUser(r)

	items := make([]quoteVM, 0, len(merged))
	for _, q := range merged {
		items = append(items, quoteVM{
			ID:        q.ID,
			Text:      q.Text,
			Author:    q.Author,
			AddedBy:   q.AddedBy,
			Removable: signedIn && h.canRemove(u, q),
			CreatedAt: q.CreatedAt,
		})
	}
	respond.OK(w, struct {
		Items []quoteVM `json:"items"`
	}{items})
}

// canRemove: only live, non-default quotes can go, and only the admin or the
// member who added them may remove them.
func (h *Handler) canRemove(u *auth.SessionUser, q models.Quote) bool {
	if q.IsDefault || h.isSeed(q.ID) {
		return false
	}
	return u.IsAdmin() || q.AddedBy == u.Name
}

func (h *Handler) isSeed(id string) bool {
	for _, live := range h.Cache.Quotes() {
		if live.ID == id {
			return false
		}
	}
	for _, s := range h.Seed {
		if s.ID == id {
			return true
		}
	}
	return false
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /quotes                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "يجب تسجيل الدخول أولاً")
		return
	}

	if err := r.ParseForm(); err != nil {
		respond.Fail(w, http.StatusBadRequest, "بيانات غير صالحة")
		return
	}
	text := strings.TrimSpace(h.Sanitize.Sanitize(r.PostFormValue("text")))
	author := strings.TrimSpace(h.Sanitize.Sanitize(r.PostFormValue("author")))

	if text == "" {
		respond.Fail(w, http.StatusBadRequest, "نص الاقتباس مطلوب")
		return
	}
	if author == "" {
		author = "مجهول"
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, models.Quote{
		Text:    text,
		Author:  author,
		AddedBy: u.Name,
	})
	if err != nil {
		h.Log.Error("quote create failed", zap.Error(err))
		respond.Fail(w, http.StatusInternalServerError, "تعذر إضافة الاقتباس")
		return
	}

	h.Log.Info("quote added", zap.String("quote_id", created.ID), zap.String("added_by", u.ID))
	respond.Done(w)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /quotes/{id}/delete – confirmed removal of a live quote               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "يجب تسجيل الدخول أولاً")
		return
	}

	if err := r.ParseForm(); err != nil {
		respond.Fail(w, http.StatusBadRequest, "بيانات غير صالحة")
		return
	}
	if r.PostFormValue("confirm") != "true" {
		respond.Fail(w, http.StatusBadRequest, "الحذف يتطلب تأكيداً")
		return
	}

	id := chi.URLParam(r, "id")
	quote, found := h.findLive(id)
	if !found {
		if h.isSeed(id) {
			respond.Fail(w, http.StatusForbidden, "الاقتباسات الأساسية لا يمكن حذفها")
			return
		}
		respond.Fail(w, http.StatusNotFound, "الاقتباس غير موجود")
		return
	}
	if !h.canRemove(u, quote) {
		respond.Fail(w, http.StatusForbidden, "لا تملك صلاحية حذف هذا الاقتباس")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Store.DeleteByID(ctx, id)
	if err != nil {
		h.Log.Error("quote delete failed", zap.String("quote_id", id), zap.Error(err))
		respond.Fail(w, http.StatusInternalServerError, "تعذر حذف الاقتباس")
		return
	}
	if deleted == 0 {
		respond.Fail(w, http.StatusNotFound, "الاقتباس غير موجود")
		return
	}

	h.Log.Info("quote removed", zap.String("quote_id", id), zap.String("by", u.ID))
	respond.Done(w)
}

func (h *Handler) findLive(id string) (models.Quote, bool) {
	for _, q := range h.Cache.Quotes() {
		if q.ID == id {
			return q, true
		}
	}
	return models.Quote{}, false
}
