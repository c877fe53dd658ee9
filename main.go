package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"projecthub/config"
	"projecthub/middleware"
	"projecthub/routes"
	"projecthub/store"
	"projecthub/utils"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	if err := config.ConnectDB(); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Create Fiber app
	app := fiber.New()

	// Add CORS middleware with the configured origins
	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = config.AppConfig.CORSOrigins
	app.Use(middleware.CORS(corsConfig))

	sessions := utils.NewSessionStore(config.AppConfig.Redis, config.AppConfig.SessionTTL)
	hasher := utils.NewBcryptHasher()
	s := store.New(config.DB, hasher)

	// Setup routes
	routes.SetupRoutes(app, s, sessions, hasher, logger)

	// Start server
	logger.Infof("Server starting on port %s", config.AppConfig.ServerPort)
	if err := app.Listen(":" + config.AppConfig.ServerPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
