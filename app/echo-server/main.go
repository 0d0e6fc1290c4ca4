package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carMarket/app/echo-server/router"
	"carMarket/business/cars"
	"carMarket/business/recommendations"
	"carMarket/internal/middleware"
	"carMarket/internal/repository/memcache"
	psqlRepo "carMarket/internal/repository/postgres"
	"carMarket/internal/repository/recoprovider"
	"carMarket/internal/rest"
	"carMarket/pkg/config"
	"carMarket/pkg/database"
	"carMarket/pkg/logger"
	"carMarket/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Car Market", "version", cfg.App.Version)

	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Init recommendation provider client and its shared cache
	recoRepo := recoprovider.NewRecoProviderRepository(
		recoprovider.RecoProviderConfig{
			BaseURL:           cfg.Recommendation.BaseURL,
			BasicAuthUsername: cfg.Recommendation.BasicAuthUsername,
			BasicAuthPassword: cfg.Recommendation.BasicAuthPassword,
			Timeout:           cfg.Recommendation.Timeout,
		},
	)
	recoCache := memcache.NewRecommendationCache(cfg.Recommendation.CacheTTL)

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	carRepo := psqlRepo.NewCarRepository(db)

	// Init service
	recommendationsService := recommendations.NewRecommendationsService(recoRepo, recoCache, cfg.Recommendation.CacheTTL)
	carsService := cars.NewCarsService(carRepo, userRepo, recommendationsService)

	// Init handler
	carsHandler := rest.NewCarsHandler(carsService)
	healthHandler := rest.NewHealthHandler()

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupCarRoutes(api, carsHandler)
	router.SetupHealthRoutes(api, healthHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
