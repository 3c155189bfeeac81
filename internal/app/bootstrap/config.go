// internal/app/bootstrap/config.go
package bootstrap

import (
	"encoding/json"
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"

	"github.com/rashamuf/museumhub/internal/app/system/auth"
)

// appConfigKeys defines the configuration keys for MuseumHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_key, etc.
//   - Environment variables: MUSEUMHUB_MONGO_URI, MUSEUMHUB_SESSION_KEY, etc.
//   - Command-line flags: --mongo_uri, --session_key, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "museum_hub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Privileged allow-list (JSON array of {"name","code"} pairs)
	{Name: "admin_allow_list", Default: "[]", Desc: "Privileged login allow-list as JSON; codes may be bcrypt hashes"},

	// Google OAuth configuration
	{Name: "google_client_id", Default: "", Desc: "Google OAuth2 client ID"},
	{Name: "google_client_secret", Default: "", Desc: "Google OAuth2 client secret"},

	// Base URL for OAuth callbacks
	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL for OAuth callbacks"},

	// Live content settings
	{Name: "feed_limit", Default: 500, Desc: "Most-recent bound on the ideas/comments subscriptions"},
	{Name: "page_size", Default: 20, Desc: "Gallery page size for show-more windows"},
	{Name: "seed_count", Default: 1000, Desc: "Number of generated bundled articles"},

	// Suggestion state machine
	{Name: "suggestion_lock_replied", Default: false, Desc: "Refuse status transitions out of 'replied'"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, MUSEUMHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "MUSEUMHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),
		SessionKey:       appValues.String("session_key"),
		SessionDomain:    appValues.String("session_domain"),

		AdminAllowList: appValues.String("admin_allow_list"),

		GoogleClientID:     appValues.String("google_client_id"),
		GoogleClientSecret: appValues.String("google_client_secret"),

		BaseURL: appValues.String("base_url"),

		FeedLimit: appValues.Int("feed_limit"),
		PageSize:  appValues.Int("page_size"),
		SeedCount: appValues.Int("seed_count"),

		SuggestionLockReplied: appValues.Bool("suggestion_lock_replied"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// MuseumHub validates the MongoDB URI format and the allow-list JSON to
// catch configuration errors early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if _, err := ParseAdminAllowList(appCfg.AdminAllowList); err != nil {
		logger.Error("invalid admin allow-list", zap.Error(err))
		return fmt.Errorf("invalid admin_allow_list: %w", err)
	}

	if appCfg.FeedLimit <= 0 {
		return fmt.Errorf("feed_limit must be positive, got %d", appCfg.FeedLimit)
	}
	if appCfg.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", appCfg.PageSize)
	}

	return nil
}

// ParseAdminAllowList decodes the configured allow-list JSON. Entries with
// an empty name or code are rejected rather than silently unusable.
func ParseAdminAllowList(raw string) ([]auth.AdminCredential, error) {
	if raw == "" {
		return nil, nil
	}
	var creds []auth.AdminCredential
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return nil, err
	}
	for i, c := range creds {
		if c.Name == "" || c.Code == "" {
			return nil, fmt.Errorf("allow-list entry %d has an empty name or code", i)
		}
	}
	return creds, nil
}
