package api

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/protouch/protouch/internal/api/handlers"
	"github.com/protouch/protouch/internal/api/middleware"
	ws "github.com/protouch/protouch/internal/api/websocket"
	"github.com/protouch/protouch/internal/config"
	"github.com/protouch/protouch/internal/database"
	"github.com/protouch/protouch/internal/repository"
	"github.com/protouch/protouch/internal/repository/cache"
	"github.com/protouch/protouch/internal/service/analyzer"
	"github.com/protouch/protouch/internal/service/llm"
	"github.com/protouch/protouch/internal/service/payment"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, db *database.DatabaseClient, redisClient *database.RedisClient, cfg *config.Config) {
	repo := repository.NewRepositoryFactory(db.DB)
	cacheRepo := cache.NewRepository(redisClient.Client)

	llmClient, err := llm.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("Gemini client unavailable, analyses run without AI enrichment: %v", err)
	}

	hub := ws.NewHub()
	go hub.Run()

	engine := analyzer.NewEngine(cfg, llmClient)
	paymentSvc := payment.NewService(cfg)
	rateLimiter := middleware.NewAnalyzeRateLimiter(cfg.AnalyzeRatePerMinute)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(repo.UserRepository, redisClient, cfg)
	userHandler := handlers.NewUserHandler(repo.UserRepository)
	analysisHandler := handlers.NewAnalysisHandler(repo, cacheRepo, engine, hub, cfg)
	exportHandler := handlers.NewExportHandler(repo, cacheRepo, cfg)
	paymentHandler := handlers.NewPaymentHandler(repo, paymentSvc, cfg)
	wsHandler := handlers.NewWebSocketHandler(hub, repo.ReportRepository)

	// API group
	api := app.Group("/api/v1")

	// Health check route
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", middleware.JWTMiddleware(cfg), authHandler.RefreshToken)
	auth.Post("/logout", middleware.JWTMiddleware(cfg), authHandler.Logout)
	auth.Get("/me", middleware.JWTMiddleware(cfg), authHandler.GetMe)

	// Admin back-office
	users := api.Group("/users", middleware.JWTMiddleware(cfg))
	users.Get("/", middleware.AdminOnly(), userHandler.ListUsers)
	users.Patch("/:id/role", middleware.AdminOnly(), userHandler.UpdateRole)
	users.Patch("/:id/subscription", middleware.AdminOnly(), userHandler.UpdateSubscription)

	// Analysis routes
	api.Post("/analyze", middleware.JWTMiddleware(cfg), rateLimiter.Handler(), analysisHandler.Analyze)

	reports := api.Group("/reports", middleware.JWTMiddleware(cfg))
	reports.Get("/", analysisHandler.ListReports)
	reports.Get("/:id", analysisHandler.GetReport)
	reports.Get("/:id/pdf", exportHandler.ExportPDF)
	reports.Get("/:id/guideline", exportHandler.ExportGuideline)

	// Payment routes; the provider callbacks arrive unauthenticated and are
	// verified by signature instead
	paymentGroup := api.Group("/payment")
	paymentGroup.Get("/plans", paymentHandler.Plans)
	paymentGroup.Post("/checkout", middleware.JWTMiddleware(cfg), paymentHandler.Checkout)
	paymentGroup.Post("/success", paymentHandler.Success)
	paymentGroup.Get("/success", paymentHandler.Success)
	paymentGroup.Post("/fail", paymentHandler.Fail)
	paymentGroup.Get("/fail", paymentHandler.Fail)

	// WebSocket endpoint for real-time analysis progress
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})

	app.Get("/ws/reports/:id", websocket.New(wsHandler.HandleReportWebSocket))
}
