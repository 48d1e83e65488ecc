// Package routes defines HTTP routes for the EstudeAI API.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/henrymzs/estudeAI/internal/handlers"
	"github.com/henrymzs/estudeAI/internal/metrics"
	"github.com/henrymzs/estudeAI/internal/middleware"
	"github.com/henrymzs/estudeAI/internal/service"
)

// Handlers groups everything Setup wires into the router.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Deck      *handlers.DeckHandler
	Flashcard *handlers.FlashcardHandler
	User      *handlers.UserHandler
	Progress  *handlers.ProgressHandler
	Health    *handlers.HealthHandler
}

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, h Handlers, jwtService service.JWTService, authService service.AuthService, limiter *middleware.RateLimiter, m *metrics.Metrics) {
	router.Use(m.Middleware())

	guard := middleware.RequireAuth(jwtService, authService)
	throttle := limiter.Middleware()

	// Health and metrics
	router.GET("/health", h.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth routes; the credential endpoints are rate-limited.
	auth := router.Group("/auth")
	{
		auth.POST("/register", throttle, h.Auth.Register)
		auth.POST("/login", throttle, h.Auth.Login)
		auth.GET("/users/me", guard, h.Auth.Me)
	}

	users := router.Group("/users", guard)
	{
		users.GET("/me", h.Auth.Me)
		users.GET("/stats", h.User.Stats)
	}

	decks := router.Group("/decks", guard)
	{
		decks.POST("", h.Deck.Create)
		decks.GET("", h.Deck.List)
		decks.GET("/:id", h.Deck.Get)
		decks.PUT("/:id", h.Deck.Update)
		decks.DELETE("/:id", h.Deck.Delete)
	}

	flashcards := router.Group("/flashcards", guard)
	{
		flashcards.POST("", h.Flashcard.Create)
		flashcards.GET("/all", h.Flashcard.ListAll)
		flashcards.GET("/deck/:deck_id", h.Flashcard.ListByDeck)
		flashcards.GET("/:id", h.Flashcard.Get)
		flashcards.PUT("/:id", h.Flashcard.Update)
		flashcards.DELETE("/:id", h.Flashcard.Delete)
	}

	router.POST("/progress", guard, h.Progress.Record)
}
