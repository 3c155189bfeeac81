// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rashamuf/museumhub/internal/app/derive"
	aboutfeature "github.com/rashamuf/museumhub/internal/app/features/about"
	authgooglefeature "github.com/rashamuf/museumhub/internal/app/features/authgoogle"
	contentfeature "github.com/rashamuf/museumhub/internal/app/features/content"
	coursesfeature "github.com/rashamuf/museumhub/internal/app/features/courses"
	dashboardfeature "github.com/rashamuf/museumhub/internal/app/features/dashboard"
	errorsfeature "github.com/rashamuf/museumhub/internal/app/features/errors"
	feedfeature "github.com/rashamuf/museumhub/internal/app/features/feed"
	healthfeature "github.com/rashamuf/museumhub/internal/app/features/health"
	homefeature "github.com/rashamuf/museumhub/internal/app/features/home"
	ideasfeature "github.com/rashamuf/museumhub/internal/app/features/ideas"
	loginfeature "github.com/rashamuf/museumhub/internal/app/features/login"
	logoutfeature "github.com/rashamuf/museumhub/internal/app/features/logout"
	membersfeature "github.com/rashamuf/museumhub/internal/app/features/members"
	messagesfeature "github.com/rashamuf/museumhub/internal/app/features/messages"
	quotesfeature "github.com/rashamuf/museumhub/internal/app/features/quotes"
	settingsfeature "github.com/rashamuf/museumhub/internal/app/features/settings"
	suggestionsfeature "github.com/rashamuf/museumhub/internal/app/features/suggestions"
	"github.com/rashamuf/museumhub/internal/app/livecache"
	"github.com/rashamuf/museumhub/internal/app/seed"
	bookmarkstore "github.com/rashamuf/museumhub/internal/app/store/bookmarks"
	commentstore "github.com/rashamuf/museumhub/internal/app/store/comments"
	coursestore "github.com/rashamuf/museumhub/internal/app/store/courses"
	ideastore "github.com/rashamuf/museumhub/internal/app/store/ideas"
	"github.com/rashamuf/museumhub/internal/app/store/oauthstate"
	quotestore "github.com/rashamuf/museumhub/internal/app/store/quotes"
	suggestionstore "github.com/rashamuf/museumhub/internal/app/store/suggestions"
	userstore "github.com/rashamuf/museumhub/internal/app/store/users"
	"github.com/rashamuf/museumhub/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// MuseumHub initializes the session manager, the live snapshot cache, and
// the bundled content tables, then mounts feature routers for every screen:
// the ideas gallery, reading feed, knowledge content, learning resources,
// quotes wall, suggestion box, and the admin area.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MuseumHubMongoDatabase

	// Session manager: privileged allow-list plus federated accounts.
	// Secure cookies are enabled in production mode.
	admins, err := ParseAdminAllowList(appCfg.AdminAllowList)
	if err != nil {
		logger.Error("admin allow-list parse failed", zap.Error(err))
		return nil, err
	}
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionDomain, secure, admins, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Federated sessions fetch the account fresh on every request so bans
	// and role changes take effect immediately.
	users := userstore.New(db)
	sessionMgr.SetUserFetcher(users)

	// Bundled content: generated once at startup and shared read-only by
	// every feature that merges it under the live documents.
	seedIdeas := seed.Ideas(appCfg.SeedCount)
	seedCourses := seed.Courses()
	seedQuotes := seed.Quotes()
	logger.Info("bundled content generated",
		zap.Int("ideas", len(seedIdeas)),
		zap.Int("courses", len(seedCourses)),
		zap.Int("quotes", len(seedQuotes)))

	// Live snapshot cache over change streams. Started on sign-in, stopped
	// on sign-out; until then every accessor returns empty slices.
	cache := livecache.NewManager(livecache.NewMongoSource(db), int64(appCfg.FeedLimit), logger)

	ideaStore := ideastore.New(db)
	commentStore := commentstore.New(db)
	courseStore := coursestore.New(db)
	bookmarkStore := bookmarkstore.New(db)
	quoteStore := quotestore.New(db)
	suggestionStore := suggestionstore.New(db)
	stateStore := oauthstate.New(db)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators.
	r.Mount("/health", healthfeature.Routes(healthfeature.NewHandler(deps.MuseumHubMongoClient, logger)))

	// Public pages.
	r.Mount("/", homefeature.Routes(homefeature.NewHandler(cache, logger)))
	r.Mount("/about", aboutfeature.Routes(aboutfeature.NewHandler(logger)))

	// Authentication.
	r.Mount("/login", loginfeature.Routes(loginfeature.NewHandler(sessionMgr, cache, logger)))
	r.Mount("/logout", logoutfeature.Routes(logoutfeature.NewHandler(sessionMgr, cache, logger)))
	r.Mount("/auth/google", authgooglefeature.Routes(authgooglefeature.NewHandler(
		sessionMgr, users, stateStore, cache,
		appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL,
		logger)))

	// Error pages.
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Content screens.
	r.Mount("/ideas", ideasfeature.Routes(ideasfeature.NewHandler(cache, seedIdeas, ideaStore, appCfg.PageSize, logger)))
	r.Mount("/feed", feedfeature.Routes(feedfeature.NewHandler(cache, seedIdeas, ideaStore, commentStore, logger)))
	r.Mount("/content", contentfeature.Routes(contentfeature.NewHandler(cache, seedIdeas, appCfg.PageSize, logger)))
	r.Mount("/courses", coursesfeature.Routes(coursesfeature.NewHandler(cache, seedCourses, courseStore, bookmarkStore, appCfg.PageSize, logger)))
	r.Mount("/quotes", quotesfeature.Routes(quotesfeature.NewHandler(cache, seedQuotes, quoteStore, logger)))
	r.Mount("/suggestions", suggestionsfeature.Routes(suggestionsfeature.NewHandler(cache, suggestionStore, logger)))

	// Account settings.
	r.Mount("/settings", settingsfeature.Routes(settingsfeature.NewHandler(users, logger)))

	// Admin area.
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardfeature.NewHandler(cache, logger)))
	r.Mount("/members", membersfeature.Routes(membersfeature.NewHandler(cache, users, logger)))
	r.Mount("/messages", messagesfeature.Routes(messagesfeature.NewHandler(
		cache, suggestionStore,
		derive.TransitionConfig{LockReplied: appCfg.SuggestionLockReplied},
		logger)))

	return r, nil
}
