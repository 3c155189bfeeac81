package auth

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/rashamuf/museumhub/internal/domain/models"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session constants                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	SessionName = "museumhub-session"

	// adminMarkerKey holds the privileged-session marker as an opaque JSON
	// blob. A blob that fails to parse counts as no session and the slot
	// is cleared.
	adminMarkerKey = "admin_session"
	// userIDKey holds the federated account's document id. The account
	// itself is re-fetched on every request so ban flags apply immediately.
	userIDKey = "user_id"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Current-User helper                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionUser is what we resolve per request & inject into r.Context().
type SessionUser struct {
	ID         string
	Name       string
	Email      string
	Specialty  string
	Role       string
	AuthMethod string
}

// IsAdmin reports whether the actor holds the admin role.
func (u *SessionUser) IsAdmin() bool { return u != nil && u.Role == models.RoleAdmin }

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user & “found?” flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

/*─────────────────────────────────────────────────────────────────────────────*
| Session manager                                                            |
*─────────────────────────────────────────────────────────────────────────────*/

// AdminCredential is one entry of the privileged allow-list. Code is either
// the plain shared code or a bcrypt hash of it (detected by prefix). The
// list comes from configuration at startup, never from a compiled-in table.
type AdminCredential struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// UserFetcher loads the persisted account behind a federated session id.
type UserFetcher interface {
	Fetch(ctx context.Context, id string) (*models.User, error)
}

// ErrBanned lets a fetcher signal a banned account; the session manager
// terminates the session in response.
var ErrBanned = errors.New("account is banned")

// adminMarker is the serialized privileged-session blob. It is never
// re-validated against the allow-list once stored; parsing it back is the
// entire check.
type adminMarker struct {
	Name      string `json:"name"`
	Timestamp int64  `json:"timestamp"`
	Role      string `json:"role"`
}

// SessionManager resolves the current actor from two mutually exclusive
// session slots: the privileged marker, or a federated account id.
type SessionManager struct {
	store  *sessions.CookieStore
	admins []AdminCredential
	users  UserFetcher
	log    *zap.Logger
}

// NewSessionManager builds the cookie store and the session manager.
// The `secure` flag controls whether cookies are marked Secure and which
// SameSite mode is used.
//
// In production (secure=true), cookies should be Secure + SameSite=None
// (for cross-site use with HTTPS).
// In local dev over http://localhost, use secure=false so cookies are accepted.
func NewSessionManager(sessionKey, domain string, secure bool, admins []AdminCredential, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}

	// SameSite handling: in prod with Secure cookies, we use None
	// so cookies can be sent in cross-site contexts. In dev, Lax is fine.
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain),
		zap.Int("admin_credentials", len(admins)))

	return &SessionManager{
		store:  store,
		admins: admins,
		log:    logger,
	}, nil
}

// SetUserFetcher wires the account store used to resolve federated sessions.
// Until it is set, federated ids resolve to no actor.
func (sm *SessionManager) SetUserFetcher(f UserFetcher) { sm.users = f }

// LoadSessionUser injects the user into context if they are logged in.
//
// Resolution order: the privileged marker wins and is not re-validated; a
// federated id goes through the fetcher with the ban check applied fresh
// on every request; otherwise there is no actor.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := sm.store.Get(r, SessionName)

		if blob, ok := sess.Values[adminMarkerKey].(string); ok {
			var m adminMarker
			if err := json.Unmarshal([]byte(blob), &m); err == nil && m.Name != "" {
				next.ServeHTTP(w, withUser(r, privilegedUser(m.Name)))
				return
			}
			// Unparseable marker: clear the slot and continue unauthenticated.
			delete(sess.Values, adminMarkerKey)
			_ = sess.Save(r, w)
		}

		if uid, ok := sess.Values[userIDKey].(string); ok && uid != "" && sm.users != nil {
			user, err := sm.users.Fetch(r.Context(), uid)
			switch {
			case err == nil && !user.IsBanned:
				next.ServeHTTP(w, withUser(r, &SessionUser{
					ID:         user.ID,
					Name:       user.Name,
					Email:      user.Email,
					Specialty:  user.Specialty,
					Role:       user.Role,
					AuthMethod: user.AuthMethod,
				}))
				return
			case err == nil, errors.Is(err, ErrBanned):
				// Banned accounts must not keep a usable session.
				sm.log.Warn("terminating banned session", zap.String("user_id", uid))
				sm.clear(sess, r, w)
			default:
				sm.log.Warn("session user fetch failed",
					zap.String("user_id", uid), zap.Error(err))
			}
		}

		next.ServeHTTP(w, r)
	})
}

// AdminLogin attempts a privileged login with a name/code pair. It returns
// true and persists the marker only on an exact allow-list match; on false
// the caller shows a generic invalid-credentials message with no hint about
// which half failed.
func (sm *SessionManager) AdminLogin(w http.ResponseWriter, r *http.Request, name, code string) bool {
	if !sm.matchAllowList(name, code) {
		return false
	}

	blob, err := json.Marshal(adminMarker{
		Name:      name,
		Timestamp: time.Now().Unix(),
		Role:      models.RoleAdmin,
	})
	if err != nil {
		sm.log.Error("marshaling admin marker", zap.Error(err))
		return false
	}

	sess, _ := sm.store.Get(r, SessionName)
	sess.Values[adminMarkerKey] = string(blob)
	delete(sess.Values, userIDKey)
	if err := sess.Save(r, w); err != nil {
		sm.log.Error("persisting admin session", zap.Error(err))
		return false
	}
	sm.log.Info("privileged login", zap.String("admin", name))
	return true
}

func (sm *SessionManager) matchAllowList(name, code string) bool {
	matched := false
	for _, cred := range sm.admins {
		nameOK := subtle.ConstantTimeCompare([]byte(cred.Name), []byte(name)) == 1
		var codeOK bool
		if strings.HasPrefix(cred.Code, "$2a$") || strings.HasPrefix(cred.Code, "$2b$") || strings.HasPrefix(cred.Code, "$2y$") {
			codeOK = bcrypt.CompareHashAndPassword([]byte(cred.Code), []byte(code)) == nil
		} else {
			codeOK = subtle.ConstantTimeCompare([]byte(cred.Code), []byte(code)) == 1
		}
		if nameOK && codeOK {
			matched = true
		}
	}
	return matched
}

// SignInFederated stores the resolved account id in the session. The OAuth
// callback calls this after fetch-or-create and the ban check have passed.
func (sm *SessionManager) SignInFederated(w http.ResponseWriter, r *http.Request, userID string) error {
	sess, _ := sm.store.Get(r, SessionName)
	sess.Values[userIDKey] = userID
	delete(sess.Values, adminMarkerKey)
	return sess.Save(r, w)
}

// Logout clears both session slots and expires the cookie. Terminating the
// identity-provider's own session is out of scope here.
func (sm *SessionManager) Logout(w http.ResponseWriter, r *http.Request) {
	sess, _ := sm.store.Get(r, SessionName)
	sm.clear(sess, r, w)
}

func (sm *SessionManager) clear(sess *sessions.Session, r *http.Request, w http.ResponseWriter) {
	delete(sess.Values, adminMarkerKey)
	delete(sess.Values, userIDKey)
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		sm.log.Error("clearing session", zap.Error(err))
	}
}

// AdminActorID is the synthetic user id a privileged allow-list login runs
// under. Allow-list admins have no backing user document, so the id is derived
// from the credential name alone.
func AdminActorID(name string) string {
	return "admin_" + name
}

func privilegedUser(name string) *SessionUser {
	return &SessionUser{
		ID:         AdminActorID(name),
		Name:       name,
		Specialty:  "مدير النظام",
		Role:       models.RoleAdmin,
		AuthMethod: models.AuthMethodAdmin,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Route guards                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

// RequireSignedIn ensures there is a user in context (set by LoadSessionUser).
// If not signed in:
//   - HTMX: sends HX-Redirect to /login?return=...
//   - HTML: 303 redirect to /login?return=...
//   - API:  401 Unauthorized with a plain error body.
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}

		ret := url.QueryEscape(currentURI(r))

		// HTMX: full-page client redirect (no partial swap)
		if r.Header.Get("HX-Request") == "true" {
			w.Header().Set("HX-Redirect", "/login?return="+ret)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		// Browser/HTML: go to login and preserve return
		if wantsHTML(r) {
			http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
			return
		}

		// Non-HTML (API) callers: plain 401
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}

// RequireRole ensures there is a user with the required role in context (set
// by LoadSessionUser). If not authorized, it redirects to HTML pages (or sets
// HX-Redirect) instead of writing a blank error. The gate keeps admin screens
// from being reachable by accident; the data layer enforces its own rules.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)

			// 1) Not signed in → 401 semantics
			if !ok {
				ret := url.QueryEscape(currentURI(r))

				if r.Header.Get("HX-Request") == "true" {
					w.Header().Set("HX-Redirect", "/login?return="+ret)
					w.WriteHeader(http.StatusUnauthorized)
					return
				}

				if wantsHTML(r) {
					http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
					return
				}

				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			// 2) Signed in but wrong role → 403 semantics
			if _, has := set[strings.ToLower(u.Role)]; !has {
				if r.Header.Get("HX-Request") == "true" {
					w.Header().Set("HX-Redirect", "/forbidden")
					w.WriteHeader(http.StatusForbidden)
					return
				}

				if wantsHTML(r) {
					http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
					return
				}

				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			// Authorized → carry on
			next.ServeHTTP(w, r)
		})
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| helpers                                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// WithTestUser injects a user directly into the request context, bypassing
// the session middleware entirely. Test helper only.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

func wantsHTML(r *http.Request) bool {
	// Very light heuristic: treat it as HTML if it's HTMX or Accepts text/html.
	if r.Header.Get("HX-Request") == "true" {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html")
}

func currentURI(r *http.Request) string {
	// Preserve path + query as a return param.
	u := *r.URL
	return u.RequestURI()
}
