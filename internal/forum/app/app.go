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

	httpapi "github.com/wizardchad/forum/internal/forum/http"
	"github.com/wizardchad/forum/internal/forum/live"
	"github.com/wizardchad/forum/internal/forum/service"
	"github.com/wizardchad/forum/internal/forum/store"
	"github.com/wizardchad/forum/internal/forum/store/drivers/sqlite"
	"github.com/wizardchad/forum/pkg/cryptox"
	"github.com/wizardchad/forum/pkg/sessionx"
	"github.com/wizardchad/forum/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

var ErrNoSessionSecret = errors.New("app: FORUM_SESSION_SECRET must be set")

// Application wires the forum service together: storage, services, the
// live-update hub, and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	sessions *sessionx.Manager
	hub      *live.Hub

	userService        *service.UserService
	postService        *service.PostService
	concentrateService *service.ConcentrateService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	if cfg.SessionSecret == "" {
		return nil, ErrNoSessionSecret
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "forum",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.sessions = &sessionx.Manager{
		Secret: []byte(cfg.SessionSecret),
		TTL:    cfg.SessionTTL,
		Secure: cfg.SecureCookies,
	}
	app.hub = live.NewHub(app.logger)

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("forum starting", "port", app.cfg.Port, "version", BuildVersion)

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

// Shutdown drains in-flight requests, closes every live connection, and
// releases the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down forum...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.hub.Shutdown()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("forum stopped")
	return nil
}

func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(sqlite.DSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initServices() {
	app.userService = &service.UserService{Store: app.db}
	app.postService = &service.PostService{Store: app.db}
	app.concentrateService = &service.ConcentrateService{Store: app.db}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.sessions, BuildVersion, app.db, app.logger)

	router.Hub = app.hub
	router.UserService = app.userService
	router.PostService = app.postService
	router.ConcentrateService = app.concentrateService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
