// Package main is the entry point for the EstudeAI API.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/henrymzs/estudeAI/internal/config"
	"github.com/henrymzs/estudeAI/internal/handlers"
	"github.com/henrymzs/estudeAI/internal/metrics"
	"github.com/henrymzs/estudeAI/internal/middleware"
	"github.com/henrymzs/estudeAI/internal/repository"
	"github.com/henrymzs/estudeAI/internal/routes"
	"github.com/henrymzs/estudeAI/internal/service"
	"github.com/henrymzs/estudeAI/pkg/database"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg := config.Load()

	// Structured JSON logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// Initialize database
	db, err := database.Connect(database.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	deckRepo := repository.NewDeckRepository(db)
	cardRepo := repository.NewFlashcardRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	actionLogRepo := repository.NewActionLogRepository(db)

	// Initialize services
	jwtService := service.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry)
	if jwtService == nil {
		log.Fatal("JWT_SECRET must be at least 32 bytes")
	}
	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	authService := service.NewAuthService(userRepo, hasher, jwtService)
	deckService := service.NewDeckService(deckRepo)
	cardService := service.NewFlashcardService(cardRepo, deckRepo)
	progressService := service.NewProgressService(progressRepo, cardRepo)
	statsService := service.NewStatsService(deckRepo, cardRepo, progressRepo)

	// Metrics and rate limiting
	m := metrics.New(prometheus.DefaultRegisterer)
	limiter := middleware.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)

	// Initialize handlers
	h := routes.Handlers{
		Auth:      handlers.NewAuthHandler(authService, actionLogRepo, m),
		Deck:      handlers.NewDeckHandler(deckService, actionLogRepo),
		Flashcard: handlers.NewFlashcardHandler(cardService),
		User:      handlers.NewUserHandler(statsService),
		Progress:  handlers.NewProgressHandler(progressService),
		Health:    handlers.NewHealthHandler(),
	}

	// Setup router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	routes.Setup(router, h, jwtService, authService, limiter, m)

	// Start server
	log.Printf("Starting EstudeAI API on port %s", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
