package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/cofndrly/growmyapp-server/internal/db"
	"github.com/cofndrly/growmyapp-server/internal/handlers"
	"github.com/cofndrly/growmyapp-server/internal/middleware"
	"github.com/cofndrly/growmyapp-server/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	// Initialize Fiber
	app := fiber.New()
	// Initialize MinIO
	storage.InitMinio()
	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Get MongoDB URI from environment
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017/growmyapp" // Default fallback
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "growmyapp"
	}

	// Connect to MongoDB and bootstrap the uniqueness indexes the swipe and
	// match invariants depend on.
	db.ConnectMongoDB(mongoURI, dbName)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Printf("Warning: failed to ensure indexes: %v", err)
	}
	cancel()

	// Health
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to GrowMyApp")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	// Public routes
	app.Post("/waitlist", handlers.WaitlistHandler)

	// Auth Routes
	auth := app.Group("/auth")
	auth.Post("/register", handlers.RegisterHandler)
	auth.Post("/login", handlers.LoginHandler)

	// Profile routes: own profile is reachable while pending approval,
	// other members only once approved.
	users := app.Group("/users", middleware.AuthMiddleware)
	users.Get("/me", handlers.GetMeHandler)
	users.Put("/me", handlers.UpdateProfileHandler)
	users.Get("/:id", middleware.ApprovedMiddleware, handlers.GetUserHandler)

	// Media uploads
	media := app.Group("/media", middleware.AuthMiddleware)
	media.Post("/profile-image", handlers.UploadProfileImageHandler)
	media.Post("/project-logo", handlers.UploadProjectLogoHandler)
	media.Post("/project-image", handlers.UploadProjectImageHandler)

	// Swipe/match routes
	swipes := app.Group("/swipes", middleware.AuthMiddleware, middleware.ApprovedMiddleware)
	swipes.Get("/candidates", handlers.GetCandidatesHandler)
	swipes.Post("/", handlers.SwipeHandler)
	app.Get("/matches", middleware.AuthMiddleware, middleware.ApprovedMiddleware, handlers.ListMatchesHandler)

	// Messaging routes
	app.Post("/messages", middleware.AuthMiddleware, middleware.ApprovedMiddleware, handlers.SendMessageHandler)
	app.Get("/messages/:userID", middleware.AuthMiddleware, middleware.ApprovedMiddleware, handlers.GetThreadHandler)
	app.Get("/conversations", middleware.AuthMiddleware, middleware.ApprovedMiddleware, handlers.ListConversationsHandler)
	app.Post("/conversations/:userID/read", middleware.AuthMiddleware, middleware.ApprovedMiddleware, handlers.MarkReadHandler)

	// Shelf project routes ("mine" must register before ":id")
	projects := app.Group("/projects", middleware.AuthMiddleware, middleware.ApprovedMiddleware)
	projects.Post("/", handlers.CreateProjectHandler)
	projects.Get("/", handlers.ListProjectsHandler)
	projects.Get("/mine", handlers.ListMyProjectsHandler)
	projects.Get("/:id", handlers.GetProjectHandler)
	projects.Post("/:id/interest", handlers.AddInterestHandler)

	// Admin Routes
	admin := app.Group("/admin", middleware.AdminMiddleware)
	admin.Get("/users", handlers.ListUsersHandler)
	admin.Post("/users/:id/approve", handlers.ApproveUserHandler)
	admin.Delete("/users/:id", handlers.RejectUserHandler)

	// Get port from environment
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // Default port
	}

	// Start server
	log.Fatal(app.Listen(":" + port))
}
