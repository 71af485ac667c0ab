// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for Pitwall.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, weather_url, etc.
//   - Environment variables: PITWALL_MONGO_URI, PITWALL_WEATHER_URL, etc.
//   - Command-line flags: --mongo_uri, --weather_url, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "pitwall", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Identity verification (tokens are issued by the external auth provider)
	{Name: "auth_jwt_secret", Default: "", Desc: "Shared HS256 secret used to verify bearer tokens"},

	// Weather upstream
	{Name: "weather_url", Default: "", Desc: "Weather function endpoint URL"},
	{Name: "weather_api_key", Default: "", Desc: "Weather function API key"},

	// Race-schedule upstreams
	{Name: "motogp_url", Default: "", Desc: "MotoGP schedule function endpoint URL"},
	{Name: "motogp_api_key", Default: "", Desc: "MotoGP schedule function API key"},
	{Name: "f1_url", Default: "", Desc: "F1 schedule function endpoint URL"},
	{Name: "f1_api_key", Default: "", Desc: "F1 schedule function API key"},

	// File-handler upstream
	{Name: "file_handler_url", Default: "", Desc: "File handler function endpoint URL"},
	{Name: "file_handler_api_key", Default: "", Desc: "File handler function API key"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "PITWALL", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		AuthJWTSecret: appValues.String("auth_jwt_secret"),

		WeatherURL:    appValues.String("weather_url"),
		WeatherAPIKey: appValues.String("weather_api_key"),

		MotoGPURL:    appValues.String("motogp_url"),
		MotoGPAPIKey: appValues.String("motogp_api_key"),
		F1URL:        appValues.String("f1_url"),
		F1APIKey:     appValues.String("f1_api_key"),

		FileHandlerURL:    appValues.String("file_handler_url"),
		FileHandlerAPIKey: appValues.String("file_handler_api_key"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI and the identity secret are required before serving
// traffic. Upstream capabilities may be left unconfigured: race providers
// degrade to empty schedules, and weather/file requests fail per-request
// with a mapped error rather than blocking startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.AuthJWTSecret == "" {
		return fmt.Errorf("auth_jwt_secret is required (identity-scoped routes cannot be served without it)")
	}

	for _, cap := range []struct{ name, url, key string }{
		{"weather", appCfg.WeatherURL, appCfg.WeatherAPIKey},
		{"motogp", appCfg.MotoGPURL, appCfg.MotoGPAPIKey},
		{"f1", appCfg.F1URL, appCfg.F1APIKey},
		{"file_handler", appCfg.FileHandlerURL, appCfg.FileHandlerAPIKey},
	} {
		if cap.url == "" || cap.key == "" {
			logger.Warn("upstream capability not configured", zap.String("capability", cap.name))
		}
	}

	return nil
}
