package suggestions

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/rashamuf/museumhub/internal/app/features/shared/respond"
	suggestionstore "github.com/rashamuf/museumhub/internal/app/store/suggestions"
	"github.com/rashamuf/museumhub/internal/app/system/auth"
	"github.com/rashamuf/museumhub/internal/app/system/timeouts"
	"github.com/rashamuf/museumhub/internal/domain/models"
)

// Cache is the slice of the live snapshot store this feature reads.
type Cache interface {
	Suggestions() []models.Suggestion
}

// Handler serves the member-facing suggestion box: submitting messages to
// the administrators and reviewing one's own history, replies included.
type Handler struct {
	Cache    Cache
	Store    *suggestionstore.Store
	Sanitize *bluemonday.Policy
	Log      *zap.Logger
}

func NewHandler(cache Cache, store *suggestionstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Cache:    cache,
		Store:    store,
		Sanitize: bluemonday.StrictPolicy(),
		Log:      logger,
	}
}

type suggestionVM struct {
	ID           string     `json:"id"`
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Author       string     `json:"author"`
	Status       string     `json:"status"`
	ReplyContent string     `json:"reply_content,omitempty"`
	RepliedBy    string     `json:"replied_by,omitempty"`
	RepliedAt    *time.Time `json:"replied_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toVM(s models.Suggestion) suggestionVM {
	return suggestionVM{
		ID:           s.ID,
		Type:         s.Type,
		Title:        s.Title,
		Content:      s.Content,
		Author:       s.Author,
		Status:       s.Status,
		ReplyContent: s.ReplyContent,
		RepliedBy:    s.RepliedBy,
		RepliedAt:    s.RepliedAt,
		CreatedAt:    s.CreatedAt,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /suggestions – own history; the admin sees everyone's                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "يجب تسجيل الدخول أولاً")
		return
	}

	items := make([]suggestionVM, 0)
	for _, s := range h.Cache.Suggestions() {
		if u.IsAdmin() || s.AuthorID == u.ID {
			items = append(items, toVM(s))
		}
	}
	respond.OK(w, struct {
		Items []suggestionVM `json:"items"`
	}{items})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /suggestions – submit a message to the administrators                 |
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
	kind := strings.TrimSpace(h.Sanitize.Sanitize(r.PostFormValue("type")))

	if title == "" || content == "" {
		respond.Fail(w, http.StatusBadRequest, "العنوان والمحتوى مطلوبان")
		return
	}
	if kind == "" {
		kind = "اقتراح"
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, models.Suggestion{
		Type:           kind,
		SuggestionType: kind,
		Title:          title,
		Content:        content,
		Author:         u.Name,
		AuthorID:       u.ID,
	})
	if err != nil {
		h.Log.Error("suggestion create failed", zap.Error(err))
		respond.Fail(w, http.StatusInternalServerError, "تعذر إرسال الاقتراح")
		return
	}

	h.Log.Info("suggestion submitted",
		zap.String("suggestion_id", created.ID),
		zap.String("author_id", u.ID))
	respond.Done(w)
}
