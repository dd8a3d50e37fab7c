package controllers

import (
	"strconv"

	"blogapi/backend/config"
	"blogapi/backend/models"
	"blogapi/backend/storage"
	"blogapi/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ArticlesController struct {
	DB    *gorm.DB
	Cfg   *config.Config
	Store storage.Storage
}

func NewArticlesController(db *gorm.DB, cfg *config.Config, store storage.Storage) *ArticlesController {
	return &ArticlesController{DB: db, Cfg: cfg, Store: store}
}

// Create inserts a new article from a multipart form. Title, excerpt and
// the image file are all required; nothing touches the store or the disk
// until all three are present.
func (ac *ArticlesController) Create(c *fiber.Ctx) error {
	title := c.FormValue("title")
	excerpt := c.FormValue("excerpt")
	file, err := c.FormFile("image")
	if title == "" || excerpt == "" || err != nil {
		return utils.BadRequest(c, "Title, excerpt and image are required")
	}

	image, err := ac.Store.Save(file)
	if err != nil {
		return utils.InternalServerError(c, "Could not save image")
	}

	article := models.Article{
		Title:   title,
		Excerpt: excerpt,
		Image:   image,
	}
	if err := article.Validate(); err != nil {
		return utils.ValidationError(c, err)
	}

	if err := ac.DB.Create(&article).Error; err != nil {
		return utils.InternalServerError(c, "Could not create article")
	}

	return c.JSON(fiber.Map{
		"message":   "Article created",
		"articleId": article.ID,
	})
}

// List returns every article; there is no draft state to filter on.
func (ac *ArticlesController) List(c *fiber.Ctx) error {
	var articles []models.Article
	if result := ac.DB.Find(&articles); result.Error != nil {
		return utils.InternalServerError(c, "Could not fetch articles")
	}

	return c.JSON(articles)
}

// Delete removes an article permanently. The stored image is kept on
// disk; uploaded assets are never garbage collected.
func (ac *ArticlesController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid article ID")
	}

	result := ac.DB.Delete(&models.Article{}, id)
	if result.Error != nil {
		return utils.InternalServerError(c, "Could not delete article")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Article not found")
	}

	return utils.Message(c, fiber.StatusOK, "Article deleted")
}
