package logout

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/rashamuf/museumhub/internal/app/features/shared/respond"
	"github.com/rashamuf/museumhub/internal/app/livecache"
	"github.com/rashamuf/museumhub/internal/app/system/auth"
)

// Handler terminates the local session. The identity provider's own session
// is out of scope; only the cookie slots are cleared.
type Handler struct {
	SessionMgr *auth.SessionManager
	Cache      *livecache.Manager
	Log        *zap.Logger
}

func NewHandler(sessionMgr *auth.SessionManager, cache *livecache.Manager, logger *zap.Logger) *Handler {
	return &Handler{SessionMgr: sessionMgr, Cache: cache, Log: logger}
}

// ServeLogout handles POST /logout. The live caches for the departing actor
// are torn down so no actor means no cached data.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if u, ok := auth.CurrentUser(r); ok {
		h.Log.Info("signing out", zap.String("user_id", u.ID))
	}
	h.SessionMgr.Logout(w, r)
	h.Cache.Stop()
	respond.Done(w)
}
