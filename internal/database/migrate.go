package database

import (
	"gorm.io/gorm"

	"github.com/biopage/backend/internal/models"
)

// Migrate creates or updates the users and links tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Link{},
	)
}
