// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration (ports, TLS, log level, and
// so on live in CoreConfig).
//
// The upstream URL/key pairs are assembled into an immutable
// upstream.Config at handler-build time and injected into the clients, so
// nothing re-reads configuration mid-request.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Identity verification
	AuthJWTSecret string // Shared HS256 secret of the external auth provider

	// Weather upstream
	WeatherURL    string
	WeatherAPIKey string

	// Race-schedule upstreams
	MotoGPURL    string
	MotoGPAPIKey string
	F1URL        string
	F1APIKey     string

	// File-handler upstream
	FileHandlerURL    string
	FileHandlerAPIKey string
}
