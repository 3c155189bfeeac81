package feed

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/rashamuf/museumhub/internal/app/derive"
	"github.com/rashamuf/museumhub/internal/app/features/shared/respond"
	commentstore "github.com/rashamuf/museumhub/internal/app/store/comments"
	ideastore "github.com/rashamuf/museumhub/internal/app/store/ideas"
	"github.com/rashamuf/museumhub/internal/app/system/auth"
	"github.com/rashamuf/museumhub/internal/app/system/normalize"
	"github.com/rashamuf/museumhub/internal/app/system/timeouts"
	"github.com/rashamuf/museumhub/internal/domain/models"
)

// Cache is the slice of the live snapshot store this feature reads.
type Cache interface {
	Ideas() []models.Idea
	Comments() []models.Comment
}

// Handler serves the reading feed: idea detail pages with their comment
// threads, comment posting, and comment likes.
type Handler struct {
	Cache    Cache
	Seed     []models.Idea
	Ideas    *ideastore.Store
	Comments *commentstore.Store
	Sanitize *bluemonday.Policy
	Log      *zap.Logger
}

func NewHandler(cache Cache, seedIdeas []models.Idea, ideas *ideastore.Store, comments *commentstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Cache:    cache,
		Seed:     seedIdeas,
		Ideas:    ideas,
		Comments: comments,
		Sanitize: bluemonday.StrictPolicy(),
		Log:      logger,
	}
}

type commentVM struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	AuthorRole string    `json:"author_role"`
	Likes      int       `json:"likes"`
	Liked      bool      `json:"liked"`
	CreatedAt  time.Time `json:"created_at"`
}

type detailVM struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Category string      `json:"category"`
	Content  string      `json:"content"`
	Author   string      `json:"author"`
	Views    int         `json:"views"`
	Likes    int         `json:"likes"`
	Liked    bool        `json:"liked"`
	Seed     bool        `json:"seed"`
	Comments []commentVM `json:"comments"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /feed – the merged reading timeline                                    |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeFeed(w http.ResponseWriter, r *http.Request) {
	search := normalize.QueryParam(query.Get(r, "q"))
	merged := derive.MergeAndFilter(h.Cache.Ideas(), h.Seed, derive.IdeaAccessors,
		derive.Query{Search: search})

	counts := h.commentCounts()

	type entry struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		Category  string    `json:"category"`
		Author    string    `json:"author"`
		Likes     int       `json:"likes"`
		Views     int       `json:"views"`
		Comments  int       `json:"comments"`
		CreatedAt time.Time `json:"created_at"`
	}
	items := make([]entry, 0, len(merged))
	for _, i := range merged {
		items = append(items, entry{
			ID: i.ID, Title: i.Title, Category: i.Category, Author: i.Author,
			Likes: i.Likes, Views: i.Views, Comments: counts[i.ID],
			CreatedAt: i.CreatedAt,
		})
	}
	respond.OK(w, struct {
		Items []entry `json:"items"`
	}{items})
}

func (h *Handler) commentCounts() map[string]int {
	counts := make(map[string]int)
	for _, c := range h.Cache.Comments() {
		if !c.Deleted {
			counts[c.IdeaID]++
		}
	}
	return counts
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /feed/{id} – idea detail with its comment thread                       |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	idea, isSeed, found := h.findIdea(id)
	if !found {
		respond.Fail(w, http.StatusNotFound, "العنصر غير موجود")
		return
	}

	actorID := ""
	if u, ok := auth.CurrentUser(r); ok {
		actorID = u.ID
	}

	// Opening a persisted idea counts a view. Seed copies have no document
	// to bump; their counter moves when promotion snapshots it.
	if !isSeed {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		if err := h.Ideas.IncrementViews(ctx, id); err != nil {
			h.Log.Warn("view increment failed", zap.String("idea_id", id), zap.Error(err))
		}
		cancel()
		idea.Views++
	}

	thread := make([]commentVM, 0)
	for _, c := range h.Cache.Comments() {
		if c.IdeaID != id || c.Deleted {
			continue
		}
		thread = append(thread, commentVM{
			ID:         c.ID,
			Text:       c.Text,
			AuthorName: c.AuthorName,
			AuthorRole: c.AuthorRole,
			Likes:      c.Likes,
			Liked:      actorID != "" && derive.ParseLikedByList(c.LikedBy).Has(actorID),
			CreatedAt:  c.CreatedAt,
		})
	}
	// Threads read oldest first.
	sort.SliceStable(thread, func(a, b int) bool {
		return thread[a].CreatedAt.Before(thread[b].CreatedAt)
	})

	respond.OK(w, detailVM{
		ID:       idea.ID,
		Title:    idea.Title,
		Category: idea.Category,
		Content:  idea.Content,
		Author:   idea.Author,
		Views:    idea.Views,
		Likes:    idea.Likes,
		Liked:    actorID != "" && derive.ParseLikedByString(idea.LikedBy).Has(actorID),
		Seed:     isSeed,
		Comments: thread,
	})
}

func (h *Handler) findIdea(id string) (models.Idea, bool, bool) {
	for _, live := range h.Cache.Ideas() {
		if live.ID == id && !live.Deleted {
			return live, false, true
		}
	}
	for _, s := range h.Seed {
		if s.ID == id {
			return s, true, true
		}
	}
	return models.Idea{}, false, false
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /feed/{id}/comments – attach a comment                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeComment(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "يجب تسجيل الدخول أولاً")
		return
	}

	ideaID := chi.URLParam(r, "id")
	if _, _, found := h.findIdea(ideaID); !found {
		respond.Fail(w, http.StatusNotFound, "العنصر غير موجود")
		return
	}

	if err := r.ParseForm(); err != nil {
		respond.Fail(w, http.StatusBadRequest, "بيانات غير صالحة")
		return
	}
	text := strings.TrimSpace(h.Sanitize.Sanitize(r.PostFormValue("text")))

	if err := derive.ValidateComment(ideaID, text, u.ID); err != nil {
		switch {
		case errors.Is(err, derive.ErrEmptyComment):
			respond.Fail(w, http.StatusBadRequest, "نص التعليق فارغ")
		case errors.Is(err, derive.ErrNoTarget):
			respond.Fail(w, http.StatusBadRequest, "لم يتم تحديد الفكرة")
		default:
			respond.Fail(w, http.StatusUnauthorized, "يجب تسجيل الدخول أولاً")
		}
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Comments.Create(ctx, models.Comment{
		IdeaID:     ideaID,
		Text:       text,
		UserID:     u.ID,
		AuthorName: u.Name,
		AuthorRole: u.Role,
	})
	if err != nil {
		h.Log.Error("comment create failed", zap.String("idea_id", ideaID), zap.Error(err))
		respond.Fail(w, http.StatusInternalServerError, "تعذر إضافة التعليق")
		return
	}

	h.Log.Info("comment posted",
		zap.String("comment_id", created.ID),
		zap.String("idea_id", ideaID),
		zap.String("user_id", u.ID))
	respond.Done(w)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /feed/comments/{id}/like – toggle a comment like                      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeCommentLike(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "يجب تسجيل الدخول أولاً")
		return
	}

	id := chi.URLParam(r, "id")
	target, found := h.findComment(id)
	if !found {
		respond.Fail(w, http.StatusNotFound, "التعليق غير موجود")
		return
	}

	plan, err := derive.ToggleLike(derive.LikeTarget{
		ID:      id,
		Likes:   target.Likes,
		LikedBy: derive.ParseLikedByList(target.LikedBy),
	}, u.ID)
	if err != nil {
		respond.Fail(w, http.StatusUnauthorized, "يجب تسجيل الدخول أولاً")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Comments.UpdateLike(ctx, id, plan.Likes, plan.LikedBy.List()); err != nil {
		h.Log.Error("comment like failed", zap.String("comment_id", id), zap.Error(err))
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
| POST /feed/comments/{id}/delete – confirmed moderation removal             |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeCommentDelete soft-deletes a comment. Threads and counts drop deleted
// comments at read time, so the document can stay for the audit trail.
func (h *Handler) ServeCommentDelete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respond.Fail(w, http.StatusBadRequest, "بيانات غير صالحة")
		return
	}
	if r.PostFormValue("confirm") != "true" {
		respond.Fail(w, http.StatusBadRequest, "الحذف يتطلب تأكيداً")
		return
	}

	id := chi.URLParam(r, "id")
	if _, found := h.findComment(id); !found {
		respond.Fail(w, http.StatusNotFound, "التعليق غير موجود")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Comments.SetDeleted(ctx, id, true); err != nil {
		h.Log.Error("comment delete failed", zap.String("comment_id", id), zap.Error(err))
		respond.Fail(w, http.StatusInternalServerError, "تعذر حذف التعليق")
		return
	}

	h.Log.Info("comment removed", zap.String("comment_id", id))
	respond.Done(w)
}

func (h *Handler) findComment(id string) (models.Comment, bool) {
	for _, c := range h.Cache.Comments() {
		if c.ID == id && !c.Deleted {
			return c, true
		}
	}
	return models.Comment{}, false
}
