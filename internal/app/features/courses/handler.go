package courses

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/rashamuf/museumhub/internal/app/derive"
	"github.com/rashamuf/museumhub/internal/app/features/shared/respond"
	bookmarkstore "github.com/rashamuf/museumhub/internal/app/store/bookmarks"
	coursestore "github.com/rashamuf/museumhub/internal/app/store/courses"
	"github.com/rashamuf/museumhub/internal/app/system/auth"
	"github.com/rashamuf/museumhub/internal/app/system/normalize"
	"github.com/rashamuf/museumhub/internal/app/system/timeouts"
	"github.com/rashamuf/museumhub/internal/domain/models"
)

// Cache is the slice of the live snapshot store this feature reads.
type Cache interface {
	Courses() []models.Course
	Bookmarks() []models.Bookmark
}

// Handler serves the learning-resources screen: listing with type tabs,
// publishing, likes (promoting bundled resources on first like, same as
// ideas) and per-user bookmarks.
type Handler struct {
	Cache     Cache
	Seed      []models.Course
	Store     *coursestore.Store
	Bookmarks *bookmarkstore.Store
	Sanitize  *bluemonday.Policy
	PageSize  int
	Log       *zap.Logger
}

func NewHandler(cache Cache, seedCourses []models.Course, store *coursestore.Store, bookmarks *bookmarkstore.Store, pageSize int, logger *zap.Logger) *Handler {
	return &Handler{
		Cache:     cache,
		Seed:      seedCourses,
		Store:     store,
		Bookmarks: bookmarks,
		Sanitize:  bluemonday.StrictPolicy(),
		PageSize:  pageSize,
		Log:       logger,
	}
}

type courseVM struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Type        string              `json:"type"`
	Description string              `json:"description"`
	Link        string              `json:"link"`
	Preview     *models.LinkPreview `json:"preview,omitempty"`
	AddedBy     string              `json:"added_by"`
	Likes       int                 `json:"likes"`
	Liked       bool                `json:"liked"`
	Views       int                 `json:"views"`
	Bookmarked  bool                `json:"bookmarked"`
	Seed        bool                `json:"seed"`
	CreatedAt   time.Time           `json:"created_at"`
}

type listVM struct {
	Items   []courseVM `json:"items"`
	Total   int        `json:"total"`
	HasMore bool       `json:"has_more"`
	Types   []string   `json:"types"`
	Type    string     `json:"type"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /courses – listing with type tabs and bookmark flags                   |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	courseType := normalize.Category(query.Get(r, "type"))
	search := normalize.QueryParam(query.Get(r, "q"))
	pages, _ := strconv.Atoi(query.Get(r, "pages"))
	saved := query.Get(r, "saved") == "true"

	merged := derive.MergeAndFilter(h.Cache.Courses(), h.Seed, derive.CourseAccessors,
		derive.Query{Category: courseType, Search: search})

	actorID := ""
	if u, ok := auth.CurrentUser(r); ok {
		actorID = u.ID
	}
	bookmarked := make(map[string]bool)
	for _, b := range h.Cache.Bookmarks() {
		if b.UserID == actorID {
			bookmarked[b.CourseID] = true
		}
	}

	if saved {
		kept := merged[:0]
		for _, c := range merged {
			if bookmarked[c.ID] {
				kept = append(kept, c)
			}
		}
		merged = kept
	}

	win := derive.NewWindow(h.PageSize)
	win.Sync(courseType, search)
	for i := 1; i < pages; i++ {
		win.More()
	}
	visible := derive.Slice(merged, win.Visible())

	items := make([]courseVM, 0, len(visible))
	for _, c := range visible {
		items = append(items, courseVM{
			ID:          c.ID,
			Title:       c.Title,
			Type:        c.Type,
			Description: c.Description,
			Link:        c.Link,
			Preview:     c.Preview,
			AddedBy:     c.AddedBy,
			Likes:       c.Likes,
			Liked:       actorID != "" && derive.ParseLikedByList(c.LikedBy).Has(actorID),
			Views:       c.Views,
			Bookmarked:  bookmarked[c.ID],
			Seed:        h.isSeed(c.ID),
			CreatedAt:   c.CreatedAt,
		})
	}

	respond.OK(w, listVM{
		Items:   items,
		Total:   len(merged),
		HasMore: len(visible) < len(merged),
		Types:   models.CourseTypes,
		Type:    courseType,
	})
}

func (h *Handler) isSeed(id string) bool {
	for _, live := range h.Cache.Courses() {
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
| POST /courses – share a learning resource                                  |
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
	description := strings.TrimSpace(h.Sanitize.Sanitize(r.PostFormValue("description")))
	courseType := normalize.Category(r.PostFormValue("type"))
	link := strings.TrimSpace(r.PostFormValue("link"))

	if title == "" || link == "" {
		respond.Fail(w, http.StatusBadRequest, "العنوان والرابط مطلوبان")
		return
	}
	if !isCourseType(courseType) {
		respond.Fail(w, http.StatusBadRequest, "نوع المصدر غير معروف")
		return
	}
	parsed, err := url.Parse(link)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		respond.Fail(w, http.StatusBadRequest, "الرابط غير صالح")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, models.Course{
		Title:       title,
		Type:        courseType,
		Description: description,
		Link:        link,
		Preview:     &models.LinkPreview{Title: title, Description: description, Domain: parsed.Hostname(), URL: link},
		AddedBy:     u.Name,
		AddedByRole: u.Role,
	})
	if err != nil {
		h.Log.Error("course create failed", zap.Error(err))
		respond.Fail(w, http.StatusInternalServerError, "تعذر إضافة المصدر")
		return
	}

	h.Log.Info("course shared",
		zap.String("course_id", created.ID),
		zap.String("added_by", u.ID))
	respond.Done(w)
}

func isCourseType(t string) bool {
	for _, c := range models.CourseTypes {
		if c == t {
			return true
		}
	}
	return false
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /courses/{id}/like – toggle, promoting bundled resources on first like|
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
		respond.Fail(w, http.StatusNotFound, "المصدر غير موجود")
		return
	}

	plan, err := derive.ToggleLike(target, u.ID)
	if err != nil {
		respond.Fail(w, http.StatusUnauthorized, "يجب تسجيل الدخول أولاً")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	switch plan.Action {
	case derive.LikePromote:
		doc := seedItem
		doc.Likes = plan.Likes
		doc.LikedBy = plan.LikedBy.List()
		doc.Views = plan.Views
		doc.Promoted = true
		err = h.Store.Promote(ctx, doc)
	case derive.LikeUpdate:
		err = h.Store.UpdateLike(ctx, id, plan.Likes, plan.LikedBy.List())
	}
	if err != nil {
		h.Log.Error("course like failed", zap.String("course_id", id), zap.Error(err))
		respond.Fail(w, http.StatusInternalServerError, "تعذر تسجيل الإعجاب")
		return
	}

	respond.OK(w, struct {
		OK    bool `json:"ok"`
		Liked bool `json:"liked"`
		Likes int  `json:"likes"`
	}{true, plan.Liked, plan.Likes})
}

func (h *Handler) findTarget(id string) (derive.LikeTarget, models.Course, bool) {
	for _, live := range h.Cache.Courses() {
		if live.ID == id {
			return derive.LikeTarget{
				ID:      id,
				Likes:   live.Likes,
				LikedBy: derive.ParseLikedByList(live.LikedBy),
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
	return derive.LikeTarget{}, models.Course{}, false
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /courses/{id}/bookmark – toggle the actor's saved flag                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeBookmark(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "يجب تسجيل الدخول أولاً")
		return
	}

	id := chi.URLParam(r, "id")
	if _, _, found := h.findTarget(id); !found {
		respond.Fail(w, http.StatusNotFound, "المصدر غير موجود")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// The cache's bookmark snapshot belongs to the actor it was started for,
	// so the toggle decision reads this member's own records from the store.
	owned, err := h.Bookmarks.ListByUser(ctx, u.ID)
	if err != nil {
		h.Log.Error("bookmark lookup failed", zap.String("course_id", id), zap.Error(err))
		respond.Fail(w, http.StatusInternalServerError, "تعذر حفظ المصدر")
		return
	}

	plan, err := derive.ToggleBookmark(owned, u.ID, id)
	if err != nil {
		respond.Fail(w, http.StatusUnauthorized, "يجب تسجيل الدخول أولاً")
		return
	}

	saved := false
	switch plan.Action {
	case derive.BookmarkCreate:
		_, err = h.Bookmarks.Create(ctx, u.ID, id)
		saved = true
	case derive.BookmarkDelete:
		_, err = h.Bookmarks.DeleteByID(ctx, plan.DeleteID)
	}
	if err != nil {
		h.Log.Error("bookmark toggle failed", zap.String("course_id", id), zap.Error(err))
		respond.Fail(w, http.StatusInternalServerError, "تعذر حفظ المصدر")
		return
	}

	respond.OK(w, struct {
		OK    bool `json:"ok"`
		Saved bool `json:"saved"`
	}{true, saved})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /courses/{id}/view – count a link open                                |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeView records that someone opened a resource link. Only persisted
// documents carry a counter; bundled copies keep their static number until
// promotion folds it in.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	target, _, found := h.findTarget(id)
	if !found {
		respond.Fail(w, http.StatusNotFound, "المصدر غير موجود")
		return
	}

	views := target.Views
	if !target.Seed {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()
		if err := h.Store.IncrementViews(ctx, id); err != nil {
			h.Log.Warn("view increment failed", zap.String("course_id", id), zap.Error(err))
		} else {
			views++
		}
	}

	respond.OK(w, struct {
		OK    bool `json:"ok"`
		Views int  `json:"views"`
	}{true, views})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /courses/{id}/delete – confirmed moderation removal                   |
*─────────────────────────────────────────────────────────────────────────────*/

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
	target, _, found := h.findTarget(id)
	if !found {
		respond.Fail(w, http.StatusNotFound, "المصدر غير موجود")
		return
	}
	if target.Seed {
		respond.Fail(w, http.StatusForbidden, "المحتوى الأساسي لا يمكن حذفه")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Store.DeleteByID(ctx, id)
	if err != nil {
		h.Log.Error("course delete failed", zap.String("course_id", id), zap.Error(err))
		respond.Fail(w, http.StatusInternalServerError, "تعذر حذف المصدر")
		return
	}
	if deleted == 0 {
		respond.Fail(w, http.StatusNotFound, "المصدر غير موجود")
		return
	}

	h.Log.Info("course removed", zap.String("course_id", id))
	respond.Done(w)
}
