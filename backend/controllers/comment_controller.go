package controllers

import (
	"errors"
	"strconv"
	"time"

	"blogapi/backend/config"
	"blogapi/backend/models"
	"blogapi/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CommentsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCommentsController(db *gorm.DB, cfg *config.Config) *CommentsController {
	return &CommentsController{DB: db, Cfg: cfg}
}

// CreateCommentRequest defines the request body for submitting a comment.
// Status and created_at are deliberately absent: both are forced
// server-side, whatever the client sends.
type CreateCommentRequest struct {
	Author    string `json:"author"`
	Email     string `json:"email"`
	Content   string `json:"content"`
	ArticleID uint   `json:"article_id"`
}

// Create accepts a new comment from any caller. The comment always
// enters the store as pending; moderation happens later.
func (cc *CommentsController) Create(c *fiber.Ctx) error {
	var input CreateCommentRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	comment := models.Comment{
		Author:    input.Author,
		Email:     input.Email,
		Content:   input.Content,
		ArticleID: input.ArticleID,
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := comment.Validate(); err != nil {
		return utils.ValidationError(c, err)
	}

	if err := cc.DB.Create(&comment).Error; err != nil {
		return utils.InternalServerError(c, "Could not create comment")
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// ListByArticle returns the approved comments for one article. This view
// is approved-only for everyone, admins included.
func (cc *CommentsController) ListByArticle(c *fiber.Ctx) error {
	articleID := c.Query("article_id")
	if articleID == "" {
		return utils.BadRequest(c, "article_id is required")
	}

	var comments []models.Comment
	result := cc.DB.
		Where("status = ? AND article_id = ?", models.StatusApproved, articleID).
		Find(&comments)
	if result.Error != nil {
		return utils.InternalServerError(c, "Could not fetch comments")
	}

	return c.JSON(comments)
}

// ListAll serves two different result sets depending on the caller. A
// request without a bearer token gets the public, approved-only view. A
// request that presents a token is verified: valid admins see every
// status, and a bad token is rejected outright rather than downgraded.
func (cc *CommentsController) ListAll(c *fiber.Ctx) error {
	raw, present := utils.TokenFromHeader(c)

	query := cc.DB.Where("status = ?", models.StatusApproved)
	if present {
		if _, err := utils.ParseToken(raw, cc.Cfg); err != nil {
			return utils.Forbidden(c, "Invalid token")
		}
		query = cc.DB
	}

	var comments []models.Comment
	if result := query.Find(&comments); result.Error != nil {
		return utils.InternalServerError(c, "Could not fetch comments")
	}

	return c.JSON(comments)
}

// GetByID returns a single comment regardless of status.
func (cc *CommentsController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid comment ID")
	}

	var comment models.Comment
	if err := cc.DB.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Comment not found")
		}
		return utils.InternalServerError(c, "Could not fetch comment")
	}

	return c.JSON(comment)
}

// UpdateContent replaces the content field of one comment. Nothing else
// is editable; status changes go through Approve/Disapprove only.
func (cc *CommentsController) UpdateContent(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid comment ID")
	}

	var input struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Content == "" {
		return utils.BadRequest(c, "Content is required")
	}

	result := cc.DB.Model(&models.Comment{}).
		Where("id = ?", id).
		Update("content", input.Content)
	if result.Error != nil {
		return utils.InternalServerError(c, "Could not update comment")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Comment not found")
	}

	return utils.Message(c, fiber.StatusOK, "Comment updated")
}

// Approve marks a comment approved. Re-approving is a no-op success.
func (cc *CommentsController) Approve(c *fiber.Ctx) error {
	return cc.setStatus(c, models.StatusApproved, "Comment approved")
}

// Disapprove marks a comment disapproved, from any prior state.
func (cc *CommentsController) Disapprove(c *fiber.Ctx) error {
	return cc.setStatus(c, models.StatusDisapproved, "Comment disapproved")
}

func (cc *CommentsController) setStatus(c *fiber.Ctx, status models.CommentStatus, message string) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid comment ID")
	}

	result := cc.DB.Model(&models.Comment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return utils.InternalServerError(c, "Could not update comment")
	}

	return utils.Message(c, fiber.StatusOK, message)
}

// Delete removes a comment permanently.
func (cc *CommentsController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid comment ID")
	}

	result := cc.DB.Delete(&models.Comment{}, id)
	if result.Error != nil {
		return utils.InternalServerError(c, "Could not delete comment")
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Comment not found")
	}

	return utils.Message(c, fiber.StatusOK, "Comment deleted")
}
