package utils

import (
	"errors"
	"fmt"

	"blogapi/backend/config"
	"blogapi/backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the Postgres connection and migrates the schema.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Comment{},
		&models.Article{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// SeedAdmin upserts the admin credential record from configuration.
// Passwords are stored as bcrypt hashes, never in plaintext. A blank
// ADMIN_PASSWORD skips seeding so tests and read-only deployments can
// run without one.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var user models.User
	err = db.Where("username = ?", cfg.AdminUsername).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			Username:     cfg.AdminUsername,
			PasswordHash: string(hash),
		}
		return db.Create(&user).Error
	}
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	return db.Save(&user).Error
}
