package main

import (
	"log"
	"os"
	"time"

	"crickarena/database"
	"crickarena/handlers"
	"crickarena/middleware"
	"crickarena/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	validateEnvironment()

	// Initialize database and cache
	database.InitDB()
	defer database.CloseDB()
	database.InitRedis()
	defer database.CloseRedis()

	// Handler init order matters: games depend on rooms and leaderboard.
	handlers.InitRoomHandlers()
	handlers.InitLeaderboardHandlers()
	handlers.InitGameHandlers()

	// Weekly/monthly leaderboard rollover
	services.InitRolloverService(database.GetDB())
	services.GetRolloverService().Start()
	defer services.GetRolloverService().Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.RateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/guest", handlers.GuestLogin)
	authGroup.Post("/login", handlers.Login)
	authGroup.Post("/register", handlers.Register)
	authGroup.Get("/me", middleware.AuthMiddleware, handlers.Me)

	// Room routes
	api.Get("/rooms", handlers.ListPublicRooms)
	api.Get("/rooms/code/:code", handlers.GetRoomByCode)
	api.Post("/rooms", middleware.AuthMiddleware, handlers.CreateRoom)
	api.Get("/rooms/mine/hosted", middleware.AuthMiddleware, handlers.MyHostedRooms)
	api.Get("/rooms/mine/joined", middleware.AuthMiddleware, handlers.MyJoinedRooms)
	api.Get("/rooms/:id", handlers.GetRoom)
	api.Post("/rooms/:id/join", middleware.AuthMiddleware, handlers.JoinRoom)
	api.Post("/rooms/:id/leave", middleware.AuthMiddleware, handlers.LeaveRoom)
	api.Post("/rooms/:id/start", middleware.AuthMiddleware, handlers.StartRoom)
	api.Post("/rooms/:id/cancel", middleware.AuthMiddleware, handlers.CancelRoom)
	api.Get("/rooms/:id/leaderboard", handlers.RoomLeaderboard)

	// Session routes
	api.Post("/rooms/:id/sessions", middleware.AuthMiddleware, handlers.StartSession)
	api.Post("/sessions/:id/submit/quiz", middleware.AuthMiddleware, handlers.SubmitQuiz)
	api.Post("/sessions/:id/submit/team", middleware.AuthMiddleware, handlers.SubmitTeam)
	api.Post("/sessions/:id/submit/strategy", middleware.AuthMiddleware, handlers.SubmitStrategy)
	api.Get("/sessions/history", middleware.AuthMiddleware, handlers.SessionHistory)

	// Game content routes
	gameGroup := api.Group("/games")
	gameGroup.Use(middleware.AuthMiddleware)
	gameGroup.Get("/quiz/questions", handlers.GetQuizQuestions)
	gameGroup.Get("/team/players", handlers.GetPlayerPool)
	gameGroup.Post("/team/validate", handlers.ValidateTeam)
	gameGroup.Get("/strategy/scenarios", handlers.GetScenarios)

	// Leaderboard routes
	api.Get("/leaderboard", handlers.GlobalLeaderboard)
	api.Get("/leaderboard/friends", middleware.AuthMiddleware, handlers.FriendsLeaderboard)

	// Friend routes
	friendGroup := api.Group("/friends")
	friendGroup.Use(middleware.AuthMiddleware)
	friendGroup.Get("/", handlers.ListFriends)
	friendGroup.Post("/", handlers.AddFriend)
	friendGroup.Delete("/:id", handlers.RemoveFriend)

	// Admin routes
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AdminAuthMiddleware)
	adminGroup.Post("/rooms/:id/reconcile", handlers.ReconcileRoomCount)

	// Room lobby WebSocket
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/rooms/:id", middleware.WebSocketAuthMiddleware, websocket.New(handlers.RoomLobbySocket()))

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")
	log.Printf("🏏 CrickArena ready: rooms, sessions and leaderboards live under /api")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
