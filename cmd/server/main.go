package main

import (
	"context"
	"log/slog"
	"os"

	"restaurant_ordering/internal/auth"
	"restaurant_ordering/internal/config"
	"restaurant_ordering/internal/database"
	"restaurant_ordering/internal/handlers"
	"restaurant_ordering/internal/middleware"
	"restaurant_ordering/internal/migrations"
	"restaurant_ordering/internal/redis"
	"restaurant_ordering/internal/repository"
	"restaurant_ordering/internal/services"
	"restaurant_ordering/pkg/logging"

	"github.com/gin-gonic/gin"
)

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

func main() {
	// Load configuration
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, database.Options{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		LogLevel:        cfg.LogLevel,
	})
	if err != nil {
		fatal("Failed to connect to database", err)
	}

	if err := migrations.Run(db, cfg.SeedMenu); err != nil {
		fatal("Failed to migrate database", err)
	}

	// Redis is optional; without it every read goes to the database.
	var cache services.Cache
	if cfg.RedisURL != "" {
		redisClient, err := redis.Initialize(cfg.RedisURL)
		if err != nil {
			fatal("Failed to connect to Redis", err)
		}
		defer redisClient.Close()
		cache = redisClient
		slog.Info("Redis cache enabled", "ttl", cfg.CacheTTL)
	} else {
		slog.Warn("REDIS_URL not set, caching disabled")
	}

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	menuService := services.NewMenuService(menuRepo, cache, cfg.CacheTTL)
	orderService := services.NewOrderService(orderRepo, cache, services.TaxRates{
		CGST: cfg.CGSTRate,
		SGST: cfg.SGSTRate,
	}, cfg.RecentOrdersLimit)
	statsService := services.NewStatisticsService(orderRepo, cache, cfg.CacheTTL)
	authService, err := services.NewAuthService(cfg.AdminPassword, jwtManager)
	if err != nil {
		fatal("Failed to set up admin login", err)
	}

	apiHandler := handlers.NewAPIHandler(
		func(ctx context.Context) error { return database.Ping(ctx, db) },
		menuService,
		orderService,
		statsService,
		authService,
	)

	// Setup routes
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		middleware.RequestLogger(),
		middleware.Metrics(),
		gin.Recovery(),
		middleware.CORS(cfg.CORSOrigins),
	)
	handlers.RegisterRoutes(router, apiHandler, jwtManager)

	// Start server
	slog.Info("Server starting", "port", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		fatal("Failed to start server", err)
	}
}
