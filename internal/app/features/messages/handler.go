package messages

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/rashamuf/museumhub/internal/app/derive"
	"github.com/rashamuf/museumhub/internal/app/features/shared/respond"
	suggestionstore "github.com/rashamuf/museumhub/internal/app/store/suggestions"
	"github.com/rashamuf/museumhub/internal/app/system/auth"
	"github.com/rashamuf/museumhub/internal/app/system/normalize"
	"github.com/rashamuf/museumhub/internal/app/system/timeouts"
	"github.com/rashamuf/museumhub/internal/domain/models"
)

// Cache is the slice of the live snapshot store this feature reads.
type Cache interface {
	Suggestions() []models.Suggestion
}

// Handler serves the admin inbox over member suggestions: status filtering,
// transitions, replies and removal.
type Handler struct {
	Cache      Cache
	Store      *suggestionstore.Store
	Transition derive.TransitionConfig
	Sanitize   *bluemonday.Policy
	Log        *zap.Logger
}

func NewHandler(cache Cache, store *suggestionstore.Store, transition derive.TransitionConfig, logger *zap.Logger) *Handler {
	return &Handler{
		Cache:      cache,
		Store:      store,
		Transition: transition,
		Sanitize:   bluemonday.StrictPolicy(),
		Log:        logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /messages – inbox with a status filter                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	status := normalize.Status(query.Get(r, "status"))
	if status != "" && status != "all" && !models.IsSuggestionStatus(status) {
		respond.Fail(w, http.StatusBadRequest, "حالة غير معروفة")
		return
	}
	if status == "all" {
		status = ""
	}

	items := derive.MergeAndFilter(h.Cache.Suggestions(), nil, derive.SuggestionAccessors,
		derive.Query{Category: status})

	respond.OK(w, struct {
		Items    []models.Suggestion `json:"items"`
		Total    int                 `json:"total"`
		Status   string              `json:"status"`
		Statuses []string            `json:"statuses"`
	}{
		items, len(items), status,
		[]string{models.SuggestionPending, models.SuggestionApproved, models.SuggestionRejected, models.SuggestionReplied},
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /messages/{id}/status – apply a transition                            |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respond.Fail(w, http.StatusBadRequest, "بيانات غير صالحة")
		return
	}

	id := chi.URLParam(r, "id")
	next := normalize.Status(r.PostFormValue("status"))

	current, found := h.find(id)
	if !found {
		respond.Fail(w, http.StatusNotFound, "الرسالة غير موجودة")
		return
	}

	if err := derive.SuggestionTransition(current.Status, next, h.Transition); err != nil {
		switch {
		case errors.Is(err, derive.ErrUnknownStatus):
			respond.Fail(w, http.StatusBadRequest, "حالة غير معروفة")
		case errors.Is(err, derive.ErrTransitionLocked):
			respond.Fail(w, http.StatusConflict, "تم الرد على هذه الرسالة ولا يمكن تغيير حالتها")
		default:
			respond.Fail(w, http.StatusBadRequest, "انتقال غير مسموح")
		}
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.SetStatus(ctx, id, next); err != nil {
		h.Log.Error("status update failed", zap.String("suggestion_id", id), zap.Error(err))
		respond.Fail(w, http.StatusInternalServerError, "تعذر تحديث الحالة")
		return
	}

	h.Log.Info("suggestion status changed",
		zap.String("suggestion_id", id),
		zap.String("from", current.Status),
		zap.String("to", next))
	respond.Done(w)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /messages/{id}/reply – answer and mark replied in one write           |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeReply(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	if err := r.ParseForm(); err != nil {
		respond.Fail(w, http.StatusBadRequest, "بيانات غير صالحة")
		return
	}

	id := chi.URLParam(r, "id")
	body := strings.TrimSpace(h.Sanitize.Sanitize(r.PostFormValue("reply")))
	if body == "" {
		respond.Fail(w, http.StatusBadRequest, "نص الرد مطلوب")
		return
	}

	current, found := h.find(id)
	if !found {
		respond.Fail(w, http.StatusNotFound, "الرسالة غير موجودة")
		return
	}

	// A reply is a transition to replied, so the same lock applies here.
	if err := derive.SuggestionTransition(current.Status, models.SuggestionReplied, h.Transition); err != nil {
		if errors.Is(err, derive.ErrTransitionLocked) {
			respond.Fail(w, http.StatusConflict, "تم الرد على هذه الرسالة ولا يمكن تغيير حالتها")
			return
		}
		respond.Fail(w, http.StatusBadRequest, "انتقال غير مسموح")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.Reply(ctx, id, body, u.Name); err != nil {
		h.Log.Error("reply failed", zap.String("suggestion_id", id), zap.Error(err))
		respond.Fail(w, http.StatusInternalServerError, "تعذر إرسال الرد")
		return
	}

	h.Log.Info("suggestion replied",
		zap.String("suggestion_id", id),
		zap.String("replied_by", u.ID))
	respond.Done(w)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /messages/{id}/delete – confirmed removal                             |
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Store.DeleteByID(ctx, id)
	if err != nil {
		h.Log.Error("suggestion delete failed", zap.String("suggestion_id", id), zap.Error(err))
		respond.Fail(w, http.StatusInternalServerError, "تعذر حذف الرسالة")
		return
	}
	if deleted == 0 {
		respond.Fail(w, http.StatusNotFound, "الرسالة غير موجودة")
		return
	}

	h.Log.Info("suggestion removed", zap.String("suggestion_id", id))
	respond.Done(w)
}

func (h *Handler) find(id string) (models.Suggestion, bool) {
	for _, s := range h.Cache.Suggestions() {
		if s.ID == id {
			return s, true
		}
	}
	return models.Suggestion{}, false
}
