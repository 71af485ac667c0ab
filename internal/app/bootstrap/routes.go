// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	filesfeature "github.com/dalemusser/pitwall/internal/app/features/files"
	healthfeature "github.com/dalemusser/pitwall/internal/app/features/health"
	preferencesfeature "github.com/dalemusser/pitwall/internal/app/features/preferences"
	racesfeature "github.com/dalemusser/pitwall/internal/app/features/races"
	weatherfeature "github.com/dalemusser/pitwall/internal/app/features/weather"
	filestore "github.com/dalemusser/pitwall/internal/app/store/files"
	prefstore "github.com/dalemusser/pitwall/internal/app/store/preferences"
	"github.com/dalemusser/pitwall/internal/app/system/identity"
	"github.com/dalemusser/pitwall/internal/app/system/jsonutil"
	"github.com/dalemusser/pitwall/internal/app/system/upstream"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, and schema setup
// have completed. The upstream clients are built here, once, from the
// immutable config; request handlers never read configuration themselves.
//
// Route layout:
//
//	/health                     liveness + DB connectivity
//	/static/*                   dashboard web client assets
//	/api/weather                public read-through to the weather upstream
//	/api/races/upcoming         public aggregate of both race providers
//	/api/preferences            identity-scoped preference document
//	/api/files                  identity-scoped upload metadata + forwarding
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	verifier, err := identity.NewVerifier(appCfg.AuthJWTSecret, logger)
	if err != nil {
		logger.Error("identity verifier init failed", zap.Error(err))
		return nil, err
	}

	upstreamCfg := upstream.Config{
		WeatherURL:        appCfg.WeatherURL,
		WeatherAPIKey:     appCfg.WeatherAPIKey,
		MotoGPURL:         appCfg.MotoGPURL,
		MotoGPAPIKey:      appCfg.MotoGPAPIKey,
		F1URL:             appCfg.F1URL,
		F1APIKey:          appCfg.F1APIKey,
		FileHandlerURL:    appCfg.FileHandlerURL,
		FileHandlerAPIKey: appCfg.FileHandlerAPIKey,
	}

	prefs := prefstore.New(deps.PitwallMongoDatabase)
	files := filestore.New(deps.PitwallMongoDatabase)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.PitwallMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets for the dashboard web client
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	r.Route("/api", func(api chi.Router) {
		// Public read-throughs
		weatherHandler := weatherfeature.NewHandler(upstream.NewWeatherClient(upstreamCfg, logger), logger)
		api.Mount("/weather", weatherfeature.Routes(weatherHandler))

		racesHandler := racesfeature.NewHandler(upstream.NewRaces(upstreamCfg, logger), logger)
		api.Mount("/races", racesfeature.Routes(racesHandler))

		// Identity-scoped routes
		api.Group(func(private chi.Router) {
			private.Use(verifier.Middleware)

			preferencesHandler := preferencesfeature.NewHandler(prefs, logger)
			private.Mount("/preferences", preferencesfeature.Routes(preferencesHandler))

			filesHandler := filesfeature.NewHandler(files, upstream.NewFileClient(upstreamCfg, logger), logger)
			private.Mount("/files", filesfeature.Routes(filesHandler))
		})
	})

	// JSON 404 for anything else; internal faults are mapped per-handler
	// and never leak detail.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		jsonutil.Error(w, http.StatusNotFound, "Route not found")
	})

	return r, nil
}
