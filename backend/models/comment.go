package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// CommentStatus is the closed set of moderation states a comment can be in.
type CommentStatus string

const (
	StatusPending     CommentStatus = "pending"
	StatusApproved    CommentStatus = "approved"
	StatusDisapproved CommentStatus = "disapproved"
)

func (s CommentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDisapproved:
		return true
	}
	return false
}

// Comment is a reader comment on an article. Status starts as pending and
// only changes through the approve/disapprove moderation endpoints.
type Comment struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Author    string        `gorm:"type:varchar(100);not null" json:"author" validate:"required"`
	Email     string        `gorm:"type:varchar(200);not null" json:"email" validate:"required,email"`
	Content   string        `gorm:"type:text;not null" json:"content" validate:"required"`
	Status    CommentStatus `gorm:"type:varchar(20);default:pending;index" json:"status"`
	ArticleID uint          `gorm:"index;not null" json:"article_id" validate:"required"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) Validate() error {
	v := validator.New()

	return v.Struct(c)
}
