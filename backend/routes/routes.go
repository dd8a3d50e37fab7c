package routes

import (
	"blogapi/backend/config"
	"blogapi/backend/controllers"
	"blogapi/backend/middleware"
	"blogapi/backend/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, store storage.Storage) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/login", authController.Login)

	// Middleware
	adminOnly := middleware.RequireAdmin(cfg)

	// Comment routes
	commentsController := controllers.NewCommentsController(db, cfg)
	app.Post("/comments", commentsController.Create)
	app.Get("/comments", commentsController.ListByArticle)
	app.Get("/all-comments", commentsController.ListAll)
	app.Get("/comments/:id", commentsController.GetByID)
	app.Put("/comments/:id", adminOnly, commentsController.UpdateContent)
	app.Put("/approve/:id", adminOnly, commentsController.Approve)
	app.Patch("/comments/:id/disapprove", adminOnly, commentsController.Disapprove)
	app.Delete("/delete/:id", adminOnly, commentsController.Delete)

	// Article routes
	articlesController := controllers.NewArticlesController(db, cfg, store)
	app.Post("/articles", adminOnly, articlesController.Create)
	app.Get("/articles", articlesController.List)
	app.Delete("/articles/:id", adminOnly, articlesController.Delete)

	// Uploaded images are served back verbatim
	app.Static("/uploads", cfg.UploadDir)
}
