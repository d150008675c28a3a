package models

import (
	"time"

	"github.com/google/uuid"
)

// Link is a single entry on a user's public page. The auto-increment ID
// gives the creation order used by the public listing.
type Link struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	URL       string    `gorm:"size:2048;not null" json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
