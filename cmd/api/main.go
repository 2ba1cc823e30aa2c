package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/sevakart/marketplace/docs/swagger"
	"github.com/sevakart/marketplace/pkg/app"
	"github.com/sevakart/marketplace/pkg/auth"
	"github.com/sevakart/marketplace/pkg/cache"
	"github.com/sevakart/marketplace/pkg/config"
	"github.com/sevakart/marketplace/pkg/database"
	"github.com/sevakart/marketplace/pkg/errhttp"
	"github.com/sevakart/marketplace/pkg/events"
	"github.com/sevakart/marketplace/pkg/httpx"
	"github.com/sevakart/marketplace/pkg/logger"
	"github.com/sevakart/marketplace/pkg/telemetry"
	"github.com/sevakart/marketplace/pkg/workflows"
	cartApi "github.com/sevakart/marketplace/services/cart/application/api"
	cartsvcs "github.com/sevakart/marketplace/services/cart/application/services"
	catalogApi "github.com/sevakart/marketplace/services/catalog/application/api"
	catalogsvcs "github.com/sevakart/marketplace/services/catalog/application/services"
	inventoryApi "github.com/sevakart/marketplace/services/inventory/application/api"
	inventorysvcs "github.com/sevakart/marketplace/services/inventory/application/services"
	orderApi "github.com/sevakart/marketplace/services/order/application/api"
	ordersvcs "github.com/sevakart/marketplace/services/order/application/services"
)

// @title					SevaKart API
// @version				1.0
// @description			B2B marketplace connecting street vendors with wholesale suppliers.
// @termsOfService			http://swagger.io/terms/
// @contact.name			API Support
// @contact.email			support@sevakart.in
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}
	errhttp.SetProduction(cfg.Environment == config.EnvProduction)

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBusWithForwarder(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	if err := eventBus.StartForwarder(ctx); err != nil {
		log.Error("failed to start event forwarder", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	var temporalClient *workflows.TemporalClient
	if cfg.TemporalEnabled {
		temporalClient, err = workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure
		}
		defer temporalClient.Close()
	}

	sessionStore := auth.NewSessionStore(redisClient.Client(), auth.SessionOptions{
		AuthKey:       []byte(cfg.SessionAuthKey),
		EncryptionKey: []byte(cfg.SessionEncryptionKey),
		Secure:        cfg.Environment == config.EnvProduction,
		TTL:           cfg.SessionTTL,
	})
	verifier := auth.NewTokenVerifier([]byte(cfg.JWTSecret))
	log.Info("session store initialized", "backend", "redis")

	appConfig := &app.Application{
		Config:         cfg,
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
		SessionStore:   sessionStore,
	}
	mods := newModules(appConfig)
	defer mods.cart.Cart.Wait()

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	checks := httpx.HealthChecks{
		Database: pool,
		Redis:    redisClient,
		EventBus: eventBus,
	}
	if temporalClient != nil {
		checks.Temporal = temporalClient
	}
	r.Get("/health", httpx.HealthHandler(checks))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		r.Post("/session", auth.NewSessionHandler(sessionStore, verifier, log))
		r.Delete("/session", auth.EndSessionHandler(sessionStore, log))
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(sessionStore, verifier, log))
			registerRoutes(r, mods)
		})
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// modules holds the service containers of every bounded context.
type modules struct {
	catalog   *catalogsvcs.Services
	cart      *cartsvcs.Services
	order     *ordersvcs.Services
	inventory *inventorysvcs.Services
}

// newModules wires the contexts in dependency order: the cart reads the
// catalog, orders read both, inventory reorders through orders.
func newModules(a *app.Application) *modules {
	catalog := catalogsvcs.New(a)
	cart := cartsvcs.New(a, catalog.Product, a.Config.CartTTL)
	order := ordersvcs.New(a, catalog.Product, cart.Cart)
	inventory := inventorysvcs.New(a, catalog.Product, order.Order)
	return &modules{catalog: catalog, cart: cart, order: order, inventory: inventory}
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, m *modules) {
	catalogApi.CatalogRoutes(r, m.catalog)
	cartApi.CartRoutes(r, m.cart)
	orderApi.OrderRoutes(r, m.order)
	inventoryApi.InventoryRoutes(r, m.inventory)
}
