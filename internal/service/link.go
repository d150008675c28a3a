package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/biopage/backend/internal/models"
)

// LinkService handles the authenticated user's link list
type LinkService struct {
	db *gorm.DB
}

// Ensure LinkService implements ILinkService
var _ ILinkService = (*LinkService)(nil)

func NewLinkService(db *gorm.DB) *LinkService {
	return &LinkService{db: db}
}

// ListLinks returns all links owned by the user, most recently created first
func (s *LinkService) ListLinks(ctx context.Context, userID uuid.UUID) ([]models.Link, error) {
	var links []models.Link
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// CreateLink inserts a link under the user's ownership and returns the
// created row including its assigned id
func (s *LinkService) CreateLink(ctx context.Context, userID uuid.UUID, title, url string) (*models.Link, error) {
	link := models.Link{
		UserID: userID,
		Title:  title,
		URL:    url,
	}
	if err := s.db.WithContext(ctx).Create(&link).Error; err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}
	return &link, nil
}

// DeleteLink removes a link only when both its id and owner match. Deleting
// a non-owned or nonexistent id affects zero rows and is not an error, so
// the operation is idempotent.
func (s *LinkService) DeleteLink(ctx context.Context, userID uuid.UUID, linkID uint) error {
	return s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", linkID, userID).
		Delete(&models.Link{}).Error
}
