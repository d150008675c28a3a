package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Birthday doubles as the password recovery
// secret, so it is never serialized.
type User struct {
	ID              uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Username        string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email           string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string    `gorm:"not null" json:"-"`
	Birthday        string    `gorm:"size:10;not null" json:"-"`
	Name            string    `gorm:"size:100" json:"name"`
	Quotes          string    `gorm:"type:text" json:"quotes"`
	ProfileImageURL string    `gorm:"size:255" json:"profile_image_url"`
}
