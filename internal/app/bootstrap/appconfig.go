// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level, CORS, and request limits. AppConfig is where
// everything specific to this application lives.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionDomain string // Cookie domain (blank means current host)

	// Privileged allow-list: JSON array of {"name": ..., "code": ...}
	// entries. Codes may be plain or bcrypt-hashed. An empty list disables
	// privileged login entirely.
	AdminAllowList string

	// Google OAuth configuration
	GoogleClientID     string
	GoogleClientSecret string

	// Base URL for OAuth callbacks (e.g., "https://museum.example.edu")
	BaseURL string

	// Live content configuration
	FeedLimit int // ideas/comments subscription bound (most recent first)
	PageSize  int // gallery page size for show-more windows
	SeedCount int // number of generated bundled articles

	// SuggestionLockReplied refuses status transitions out of "replied"
	// when set. Off by default: a later reply overwrites an earlier one.
	SuggestionLockReplied bool
}
