package ideas

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/rashamuf/museumhub/internal/app/derive"
	"github.com/rashamuf/museumhub/internal/app/features/shared/respond"
	ideastore "github.com/rashamuf/museumhub/internal/app/store/ideas"
	"github.com/rashamuf/museumhub/internal/app/system/auth"
	"github.com/rashamuf/museumhub/internal/app/system/normalize"
	"github.com/rashamuf/museumhub/internal/app/system/timeouts"
	"github.com/rashamuf/museumhub/internal/domain/models"
)

// Cache is the slice of the live snapshot store this feature reads.
// *livecache.Manager satisfies it.
type Cache interface {
	Ideas() []models.Idea
}

// Handler serves the ideas gallery: the bundled articles merged with the
// community's own, filtered, searched and windowed.
type Handler struct {
	Cache    Cache
	Seed     []models.Idea
	Store    *ideastore.Store
	Sanitize *bluemonday.Policy
	PageSize int
	Log      *zap.Logger
}

func NewHandler(cache Cache, seedIdeas []models.Idea, store *ideastore.Store, pageSize int, logger *zap.Logger) *Handler {
	return &Handler{
		Cache:    cache,
		Seed:     seedIdeas,
		Store:    store,
		Sanitize: bluemonday.StrictPolicy(),
		PageSize: pageSize,
		Log:      logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| view models                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

type ideaVM struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	AuthorID  string    `json:"author_id"`
	Views     int       `json:"views"`
	Likes     int       `json:"likes"`
	Liked     bool      `json:"liked"`
	Featured  bool      `json:"featured"`
	Seed      bool      `json:"seed"`
	CreatedAt time.Time `json:"created_at"`
}

type listVM struct {
	Items      []ideaVM `json:"items"`
	Total      int      `json:"total"`
	HasMore    bool     `json:"has_more"`
	Categories []string `json:"categories"`
	Category   string   `json:"category"`
	Search     string   `json:"search,omitempty"`
}

func (h *Handler) toVM(i models.Idea, actorID string) ideaVM {
	return ideaVM{
		ID:        i.ID,
		Title:     i.Title,
		Category:  i.Category,
		Content:   i.Content,
		Author:    i.Author,
		AuthorID:  i.AuthorID,
		Views:     i.Views,
		Likes:     i.Likes,
		Liked:     actorID != "" && derive.ParseLikedByString(i.LikedBy).Has(actorID),
		Featured:  i.Featured,
		Seed:      h.isSeed(i.ID),
		CreatedAt: i.CreatedAt,
	}
}

// isSeed reports whether the id still refers to a bundled copy: present in
// the static tables and not yet shadowed by a live document.
func (h *Handler) isSeed(id string) bool {
	for _, live := range h.Cache.Ideas() {
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
| GET /ideas – gallery with category tabs, search and show-more              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	category := normalize.Category(query.Get(r, "category"))
	search := normalize.QueryParam(query.Get(r, "q"))
	pages, _ := strconv.Atoi(query.Get(r, "pages"))

	merged := derive.MergeAndFilter(h.Cache.Ideas(), h.Seed, derive.IdeaAccessors,
		derive.Query{Category: category, Search: search})

	win := derive.NewWindow(h.PageSize)
	win.Sync(category, search)
	for i := 1; i < pages; i++ {
		win.More()
	}
	visible := derive.Slice(merged, win.Visible())

	actorID := ""
	if u, ok := auth.CurrentUser(r); ok {
		actorID = u.ID
	}

	items := make([]ideaVM, 0, len(visible))
	for _, i := range visible {
		items = append(items, h.toVM(i, actorID))
	}

	respond.OK(w, listVM{
		Items:      items,
		Total:      len(merged),
		HasMore:    len(visible) < len(merged),
		Categories: models.IdeaCategories,
		Category:   category,
		Search:     search,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /ideas – publish a new idea                                           |
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

	title := strings.TrimSpace(h.Sanitize.Sanitize(r.PostFormValue("title")))
	content := strings.TrimSpace(h.Sanitize.Sanitize(r.PostFormValue("content")))
	category := normalize.Category(r.PostFormValue("category"))

	if title == "" || content == "" {
		respond.Fail(w, http.StatusBadRequest, "العنوان والمحتوى مطلوبان")
		return
	}
	if !models.IsIdeaCategory(category) {
		respond.Fail(w, http.StatusBadRequest, "تصنيف غير معروف")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, models.Idea{
		Title:      title,
		Category:   category,
		Content:    content,
		Author:     u.Name,
		AuthorID:   u.ID,
		AuthorRole: u.Role,
	})
	if err != nil {
		h.Log.Error("idea create failed", zap.Error(err))
		respond.Fail(w, http.StatusInternalServerError, "تعذر نشر الفكرة، حاول مرة أخرى")
		return
	}

	h.Log.Info("idea published",
		zap.String("idea_id", created.ID),
		zap.String("author_id", u.ID))
	respond.Done(w)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /ideas/{id}/like – toggle, promoting bundled items on first like      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLike(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "يجب تسجيل الدخول أولاً")
		return
	}

	id := chi.URLParam(r, "id")
	target, seedItem, found := h.findTarget(id)
	if !found {
		respond.Fail(w, http.StatusNotFound, "العنصر غير موجود")
		return
	}

	plan, err := derive.ToggleLike(target, u.ID)
	if err != nil {
		if errors.Is(err, derive.ErrSignInRequired) {
			respond.Fail(w, http.StatusUnauthorized, "يجب تسجيل الدخول أولاً")
			return
		}
		respond.Fail(w, http.StatusInternalServerError, "تعذر تسجيل الإعجاب")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	switch plan.Action {
	case derive.LikePromote:
		doc := seedItem
		doc.Likes = plan.Likes
		doc.LikedBy = plan.LikedBy.Delimited()
		doc.Views = plan.Views
		doc.Promoted = true
		err = h.Store.Promote(ctx, doc)
	case derive.LikeUpdate:
		err = h.Store.UpdateLike(ctx, id, plan.Likes, plan.LikedBy.Delimited())
	}
	if err != nil {
		h.Log.Error("like write failed", zap.String("idea_id", id), zap.Error(err))
		respond.Fail(w, http.StatusInternalServerError, "تعذر تسجيل الإعجاب")
		return
	}

	respond.OK(w, struct {
		OK    bool `json:"ok"`
		Liked bool `json:"liked"`
		Likes int  `json:"likes"`
	}{true, plan.Liked, plan.Likes})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /ideas/{id}/delete – confirmed moderation removal                     |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeDelete soft-deletes a published idea. The merge layer drops deleted
// documents, so the bundled copy with the same id stays hidden too.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respond.Fail(w, http.StatusBadRequest, "بيانات غير صالحة")
		return
	}
	if r.PostFormValue("confirm") != "true" {
		respond.Fail(w, http.StatusBadRequest, "الحذف يتطلب تأكيداً")
		return
	}

	id := chi.URLParam(r, "id")

	if h.isSeed(id) {
		respond.Fail(w, http.StatusForbidden, "المحتوى الأساسي لا يمكن حذفه")
		return
	}
	live := false
	for _, i := range h.Cache.Ideas() {
		if i.ID == id {
			live = true
			break
		}
	}
	if !live {
		respond.Fail(w, http.StatusNotFound, "العنصر غير موجود")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.SetDeleted(ctx, id, true); err != nil {
		h.Log.Error("idea delete failed", zap.String("idea_id", id), zap.Error(err))
		respond.Fail(w, http.StatusInternalServerError, "تعذر حذف العنصر")
		return
	}

	h.Log.Info("idea removed", zap.String("idea_id", id))
	respond.Done(w)
}

// findTarget resolves an id to its like target. A live document wins over
// the bundled copy with the same id.
func (h *Handler) findTarget(id string) (derive.LikeTarget, models.Idea, bool) {
	for _, live := range h.Cache.Ideas() {
		if live.ID == id {
			return derive.LikeTarget{
				ID:      id,
				Likes:   live.Likes,
				LikedBy: derive.ParseLikedByString(live.LikedBy),
				Views:   live.Views,
			}, live, true
		}
	}
	for _, s := range h.Seed {
		if s.ID == id {
			return derive.LikeTarget{
				ID:    id,
				Seed:  true,
				Likes: s.Likes,
				Views: s.Views,
			}, s, true
		}
	}
	return derive.LikeTarget{}, models.Idea{}, false
}
