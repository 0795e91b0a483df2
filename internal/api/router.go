package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/sevakendra/portal-api/docs"
	"github.com/sevakendra/portal-api/internal/api/handler"
	"github.com/sevakendra/portal-api/internal/api/middleware"
	"github.com/sevakendra/portal-api/internal/core/domain"
	"github.com/sevakendra/portal-api/internal/core/ports"
)

// RouterConfig carries the wired services and optional infrastructure
// handles the router needs.
type RouterConfig struct {
	Auth     ports.AuthService
	Catalog  ports.CatalogService
	Requests ports.RequestService

	// MongoDB and Redis are used by the readiness probe only; either may
	// be nil (memory store, cache disabled).
	MongoDB *mongo.Database
	Redis   *redis.Client

	// ProtectStatusUpdates guards PUT /api/requests/:id/status behind
	// bearer auth plus an admin role check. The reference behavior
	// leaves it public.
	ProtectStatusUpdates bool

	// Registerer receives the HTTP request metrics. Defaults to the
	// prometheus default registerer; tests inject a fresh registry so
	// building several routers does not collide.
	Registerer prometheus.Registerer

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// The portal's mobile client calls from a file:// origin, so CORS
	// stays fully open.
	e.Use(echomiddleware.CORS())

	registerer := cfg.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	// /metrics must read from wherever the middleware writes, so the
	// gatherer follows the registerer when it is a full registry.
	gatherer := prometheus.DefaultGatherer
	if g, ok := registerer.(prometheus.Gatherer); ok {
		gatherer = g
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "sevakendra",
		Registerer: registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(cfg.Auth)
	serviceHandler := handler.NewServiceHandler(cfg.Catalog)
	requestHandler := handler.NewRequestHandler(cfg.Requests)
	authRequired := middleware.Auth(cfg.Auth)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Service catalog: public read, authenticated mutations ---
	e.GET("/api/services", serviceHandler.List)
	e.POST("/api/services", serviceHandler.Create, authRequired)
	e.PUT("/api/services/:id", serviceHandler.Update, authRequired)
	e.DELETE("/api/services/:id", serviceHandler.Delete, authRequired)

	// --- Request lifecycle: public submission and tracking ---
	e.POST("/api/requests", requestHandler.Submit)
	e.GET("/api/requests", requestHandler.List)
	e.GET("/api/requests/user/:phone", requestHandler.ListByPhone)
	e.GET("/api/requests/track/:registrationNo", requestHandler.Track)
	if cfg.ProtectStatusUpdates {
		e.PUT("/api/requests/:id/status", requestHandler.UpdateStatus,
			authRequired, middleware.RequireRole(domain.RoleAdmin))
	} else {
		e.PUT("/api/requests/:id/status", requestHandler.UpdateStatus)
	}

	// --- Operational endpoints ---
	indexHandler := handler.NewIndexHandler()
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.MongoDB, cfg.Redis)

	e.GET("/", indexHandler.Index)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
