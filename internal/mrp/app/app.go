package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/cache"
	httpapi "github.com/alejomzlz/panaderia-mrp/internal/mrp/http"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/service"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/store"
	"github.com/alejomzlz/panaderia-mrp/internal/mrp/store/drivers/sqlite"
	"github.com/alejomzlz/panaderia-mrp/pkg/cryptox"
	"github.com/alejomzlz/panaderia-mrp/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// Application wires the MRP service together: store, services, HTTP server
// and the background housekeeping worker.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	cache    *cache.Cache
	digester cryptox.Digester

	auditService        *service.AuditService
	authService         *service.AuthService
	sessionService      *service.SessionService
	bootstrapService    *service.BootstrapService
	userService         *service.UserService
	productService      *service.ProductService
	supplierService     *service.SupplierService
	clientService       *service.ClientService
	saleService         *service.SaleService
	dashboardService    *service.DashboardService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized: database
// migrated, secret key resolved, admin account ensured.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:   cfg,
		cache: cache.New(),
		logger: slogx.New(slogx.Config{
			Service: "mrp-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	secret := cfg.SecretKey
	if secret == "" {
		loaded, err := cryptox.LoadOrCreateSecret(cfg.SecretKeyFile)
		if err != nil {
			return nil, fmt.Errorf("resolve secret key: %w", err)
		}
		secret = loaded
		app.logger.Info("secret key loaded from file", "path", cfg.SecretKeyFile)
	}
	app.digester = cryptox.Digester{Salt: cfg.DigestSalt, Secret: secret}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()

	if err := app.bootstrapService.EnsureAdmin(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("ensure admin account: %w", err)
	}

	app.initHTTP()
	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("mrp service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown drains in-flight requests, stops housekeeping and closes the
// database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down mrp service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("mrp service stopped")
	return nil
}

func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied")
	return nil
}

func (app *Application) initServices() {
	app.auditService = &service.AuditService{Store: app.db}
	app.authService = &service.AuthService{
		Store:    app.db,
		Digester: app.digester,
		Audit:    app.auditService,
	}
	app.sessionService = &service.SessionService{
		Auth:  app.authService,
		Audit: app.auditService,
	}
	app.bootstrapService = &service.BootstrapService{
		Store:         app.db,
		Digester:      app.digester,
		Audit:         app.auditService,
		AdminPassword: app.cfg.AdminPassword,
	}
	app.userService = &service.UserService{
		Store:    app.db,
		Digester: app.digester,
		Cache:    app.cache,
		Audit:    app.auditService,
	}
	app.productService = &service.ProductService{Store: app.db, Cache: app.cache}
	app.supplierService = &service.SupplierService{Store: app.db, Cache: app.cache}
	app.clientService = &service.ClientService{Store: app.db, Cache: app.cache}
	app.saleService = &service.SaleService{Store: app.db, Cache: app.cache}
	app.dashboardService = &service.DashboardService{Store: app.db, Cache: app.cache}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.AuditRetention,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	router.AuthService = app.authService
	router.SessionService = app.sessionService
	router.UserService = app.userService
	router.ProductService = app.productService
	router.SupplierService = app.supplierService
	router.ClientService = app.clientService
	router.SaleService = app.saleService
	router.DashboardService = app.dashboardService
	router.AuditService = app.auditService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
