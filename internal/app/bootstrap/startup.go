// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. Pitwall
// has no caches to warm; this only records the configured capabilities.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("pitwall starting",
		zap.Bool("weather_configured", appCfg.WeatherURL != "" && appCfg.WeatherAPIKey != ""),
		zap.Bool("motogp_configured", appCfg.MotoGPURL != "" && appCfg.MotoGPAPIKey != ""),
		zap.Bool("f1_configured", appCfg.F1URL != "" && appCfg.F1APIKey != ""),
		zap.Bool("file_handler_configured", appCfg.FileHandlerURL != "" && appCfg.FileHandlerAPIKey != ""))
	return nil
}
