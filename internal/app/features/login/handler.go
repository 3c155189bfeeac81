package login

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"

	"github.com/rashamuf/museumhub/internal/app/features/shared/respond"
	"github.com/rashamuf/museumhub/internal/app/system/auth"
)

// Cache is the slice of the live cache this feature arms. A privileged login
// has to start the snapshot loops itself: it never passes through the OAuth
// callback, which is where member sign-ins arm the cache.
type Cache interface {
	Start(ctx context.Context, actorID string)
}

// Handler serves the sign-in screen and the privileged login form.
type Handler struct {
	SessionMgr *auth.SessionManager
	Cache      Cache
	Log        *zap.Logger
}

func NewHandler(sessionMgr *auth.SessionManager, cache Cache, logger *zap.Logger) *Handler {
	return &Handler{SessionMgr: sessionMgr, Cache: cache, Log: logger}
}

type loginVM struct {
	Title     string `json:"title"`
	GoogleURL string `json:"google_url"`
	ReturnURL string `json:"return_url,omitempty"`
	SignedIn  bool   `json:"signed_in"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	vm := loginVM{
		Title:     "تسجيل الدخول",
		GoogleURL: "/auth/google",
		ReturnURL: query.Get(r, "return"),
	}
	if _, ok := auth.CurrentUser(r); ok {
		vm.SignedIn = true
	}
	respond.OK(w, vm)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login/admin                                                           |
| Privileged allow-list login. Failure text never says which half failed.     |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeAdminLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respond.Fail(w, http.StatusBadRequest, "بيانات غير صالحة")
		return
	}

	name := r.PostFormValue("name")
	code := r.PostFormValue("code")

	if !h.SessionMgr.AdminLogin(w, r, name, code) {
		h.Log.Warn("privileged login rejected", zap.String("name", name))
		respond.Fail(w, http.StatusUnauthorized, "بيانات الدخول غير صحيحة")
		return
	}

	h.Cache.Start(context.Background(), auth.AdminActorID(name))

	respond.Done(w)
}
