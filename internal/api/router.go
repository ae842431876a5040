package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/relutech/asset-management/internal/api/handler"
	"github.com/relutech/asset-management/internal/api/middleware"
	"github.com/relutech/asset-management/internal/core/service"
	mongodb "github.com/relutech/asset-management/internal/infrastructure/db/mongo"
	redisdb "github.com/relutech/asset-management/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("assetmgmt"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	assetRepo := mongodb.NewAssetRepository(db)
	licenseRepo := mongodb.NewLicenseRepository(db)
	sessions := redisdb.NewSessionStore(rdb)

	authService := service.NewAuthService(accountRepo, sessions, jwtSecret, tokenTTL, log)
	developerService := service.NewDeveloperService(accountRepo, assetRepo, licenseRepo, log)
	assetService := service.NewAssetService(accountRepo, assetRepo, log)
	licenseService := service.NewLicenseService(accountRepo, licenseRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	developerHandler := handler.NewDeveloperHandler(developerService)
	assetHandler := handler.NewAssetHandler(assetService)
	licenseHandler := handler.NewLicenseHandler(licenseService)

	// Identity resolution only; each operation enforces its own policy.
	e.Use(middleware.Identity(jwtSecret, sessions))

	// --- Auth ---
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.POST("/register", authHandler.Register)

	// --- Dashboard ---
	e.GET("/dashboard", developerHandler.Dashboard)

	// --- Developers ---
	e.GET("/developers", developerHandler.Overview)
	e.POST("/developers", developerHandler.Create)
	e.PUT("/developers/:id", developerHandler.Update)

	// --- Assets ---
	e.GET("/assets", assetHandler.List)
	e.GET("/assets/:developer_id", assetHandler.List)
	e.POST("/assets/:developer_id", assetHandler.Assign)
	e.DELETE("/assets/:developer_id/:asset_id", assetHandler.Remove)

	// --- Licenses ---
	e.GET("/licenses", licenseHandler.List)
	e.GET("/licenses/:developer_id", licenseHandler.List)
	e.POST("/licenses/:developer_id", licenseHandler.Assign)
	e.DELETE("/licenses/:developer_id/:license_id", licenseHandler.Remove)

	// --- Observability and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
