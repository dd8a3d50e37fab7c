package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Article is a published blog post. Image holds the public reference path
// returned by the storage layer; an article is never created without one.
type Article struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Excerpt   string    `gorm:"type:text;not null" json:"excerpt" validate:"required"`
	Image     string    `gorm:"type:varchar(255);not null" json:"image" validate:"required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Article) TableName() string {
	return "articles"
}

func (a *Article) Validate() error {
	v := validator.New()

	return v.Struct(a)
}
