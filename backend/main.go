package main

import (
	"log"
	"strings"

	"blogapi/backend/config"
	"blogapi/backend/middleware"
	"blogapi/backend/routes"
	"blogapi/backend/storage"
	"blogapi/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Seed the admin credential from the environment
	if err := utils.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("Error seeding admin user: %v", err)
	}

	// Initialize upload storage
	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Error initializing upload storage: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOriginList(), ","),
		AllowMethods: "GET, POST, PUT, PATCH, DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestLogger(logger))

	// Setup routes
	routes.SetupRoutes(app, db, cfg, store)

	// Start server
	logger.Info().Str("port", cfg.ServerPort).Msg("starting server")
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
