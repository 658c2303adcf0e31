package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/harvestnet/platform/internal/platform/http"
	"github.com/harvestnet/platform/internal/platform/service"
	"github.com/harvestnet/platform/internal/platform/store"
	"github.com/harvestnet/platform/internal/platform/store/drivers/sqlite"
	"github.com/harvestnet/platform/internal/platform/weather"
	"github.com/harvestnet/platform/pkg/cryptox"
	"github.com/harvestnet/platform/pkg/jwtx"
	"github.com/harvestnet/platform/pkg/slogx"
)

// BuildVersion is overridden at build time with -ldflags "-X ...app.BuildVersion=...".
var BuildVersion = "v1.0.0"

// Application wires the HarvestNet API server and its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	hasher   *cryptox.PasswordHasher
	signer   jwtx.Signer
	verifier jwtx.Verifier

	authService         *service.AuthService
	userService         *service.UserService
	analyticsService    *service.AnalyticsService
	weatherService      *service.WeatherService
	exportService       *service.ExportService
	housekeepingService *service.HousekeepingService // nil unless HOUSEKEEPING_INTERVAL > 0

	server *http.Server
	router *httpapi.Router
}

// New creates an Application: store opened and migrated, seed accounts
// present, services and router wired.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "harvestnet-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	pepper, err := cryptox.LoadOrCreatePepper(cfg.PepperFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}
	app.hasher = cryptox.NewPasswordHasher(pepper)

	if err := app.initTokens(); err != nil {
		return nil, err
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()

	if err := app.seed(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Handler exposes the router, mainly for in-process tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	if app.housekeepingService != nil {
		app.housekeepingService.Start()
	}

	app.logger.Info("harvestnet api starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down harvestnet api...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.housekeepingService != nil {
		app.housekeepingService.Stop()
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("harvestnet api stopped")
	return nil
}

// initTokens builds the HS256 signer and verifier. Without JWT_SECRET a
// random secret is generated, so tokens die with the process.
func (app *Application) initTokens() error {
	secret := app.cfg.JWTSecret
	if secret == "" {
		generated, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return fmt.Errorf("failed to generate jwt secret: %w", err)
		}
		secret = generated
		app.logger.Warn("JWT_SECRET not set, using a random secret; tokens will not survive a restart")
	}

	signer, err := jwtx.NewSignerHS256([]byte(secret))
	if err != nil {
		return fmt.Errorf("invalid JWT_SECRET: %w", err)
	}
	app.signer = signer
	app.verifier = jwtx.NewVerifierHS256([]byte(secret), app.cfg.TokenIssuer, 0)
	return nil
}

// initDatabase opens the store and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(app.cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "path", app.cfg.DatabaseFile)
	return nil
}

func (app *Application) seed(ctx context.Context) error {
	seeder := &service.SeedService{
		Store:    app.db,
		Hasher:   app.hasher,
		Password: app.cfg.SeedPassword,
	}
	n, err := seeder.EnsureSeedUsers(slogx.WithContext(ctx, app.logger))
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	if n > 0 {
		app.logger.Info("seed users created", "count", n)
	}
	return nil
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:  app.db,
		Hasher: app.hasher,
		Tokens: &service.TokenService{
			Signer: app.signer,
			Issuer: app.cfg.TokenIssuer,
			TTL:    app.cfg.TokenTTL,
		},
	}
	app.userService = &service.UserService{Store: app.db}
	app.analyticsService = &service.AnalyticsService{Store: app.db}
	app.weatherService = &service.WeatherService{
		Store:   app.db,
		Fetcher: weather.NewClient(app.cfg.WeatherBaseURL, app.cfg.WeatherUserAgent, app.cfg.WeatherTimeout),
		Window:  app.cfg.WeatherCacheWindow,
	}
	app.exportService = &service.ExportService{Store: app.db}

	if app.cfg.HousekeepingInterval > 0 {
		app.housekeepingService = service.NewHousekeepingService(
			app.db,
			app.logger,
			app.cfg.HousekeepingInterval,
			app.cfg.WeatherCacheWindow,
		)
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
		app.cfg.RateLimits,
		app.cfg.CORSAllowedOrigin,
	)

	router.AuthService = app.authService
	router.UserService = app.userService
	router.AnalyticsService = app.analyticsService
	router.WeatherService = app.weatherService
	router.ExportService = app.exportService
	router.Validate = service.NewValidator()
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
