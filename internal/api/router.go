package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ozstore/storefront-api/internal/api/handler"
	"github.com/ozstore/storefront-api/internal/api/middleware"
	"github.com/ozstore/storefront-api/internal/core/service"
	mongodb "github.com/ozstore/storefront-api/internal/infrastructure/db/mongo"
	"github.com/ozstore/storefront-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/ozstore/storefront-api/internal/infrastructure/http/handlers"
	"github.com/ozstore/storefront-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, tokens)
	authHandler := handler.NewAuthHandler(authService)

	orderRepo := mongodb.NewOrderRepository(db)
	orderService := service.NewOrderService(orderRepo, log)
	orderHandler := handler.NewOrderHandler(orderService)

	productRepo := mongodb.NewProductRepository(db)
	productCache := redis.NewProductCache(rdb, cfg.ProductCacheTTL)
	catalogService := service.NewCatalogService(productRepo, productCache, log)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	authGate := middleware.Auth(tokens)
	adminGate := middleware.AdminOnly()

	// --- Auth routes ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)
	e.PUT("/v1/auth/profile", authHandler.UpdateProfile, authGate)

	// --- Order routes (all behind the bearer-token gate) ---
	e.POST("/v1/orders", orderHandler.Create, authGate)
	e.GET("/v1/orders", orderHandler.ListAll, authGate, adminGate)
	e.GET("/v1/orders/history", orderHandler.History, authGate)
	e.GET("/v1/orders/:id", orderHandler.Get, authGate)
	e.PUT("/v1/orders/:id/pay", orderHandler.MarkPaid, authGate)

	// --- Catalog routes (public) ---
	e.GET("/v1/products/categories", catalogHandler.Categories)
	e.GET("/v1/products/slug/:slug", catalogHandler.GetBySlug)
	e.GET("/v1/products/:id/availability", catalogHandler.Availability)
	e.GET("/v1/products/:id", catalogHandler.Get)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
