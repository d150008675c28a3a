package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/biopage/backend/internal/models"
	"github.com/biopage/backend/internal/types"
)

// ProfileService handles profile reads and writes, including the public
// per-username page data
type ProfileService struct {
	db     *gorm.DB
	images IImageService
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

func NewProfileService(db *gorm.DB, images IImageService) *ProfileService {
	return &ProfileService{
		db:     db,
		images: images,
	}
}

// GetProfile retrieves the authenticated user's profile fields
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile persists name, quotes and the image URL in one update.
// With an image payload the data is handed to the image host under a fresh
// unique file name and the returned URL replaces the stored one; without a
// payload the previously stored URL is re-read and retained. The read and
// the write are separate statements, so concurrent updates to the same user
// can interleave; that window is accepted.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	imageURL := user.ProfileImageURL
	if req.ImageBase64 != nil && *req.ImageBase64 != "" {
		data, err := DecodeBase64Image(*req.ImageBase64)
		if err != nil {
			return "", err
		}

		fileName := fmt.Sprintf("profile-images/%s.png", uuid.New().String())
		url, err := s.images.UploadProfileImage(ctx, data, fileName)
		if err != nil {
			return "", fmt.Errorf("failed to upload profile image: %w", err)
		}
		imageURL = url
	}

	if err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"name":              req.Name,
			"quotes":            req.Quotes,
			"profile_image_url": imageURL,
		}).Error; err != nil {
		return "", fmt.Errorf("failed to update profile: %w", err)
	}

	return imageURL, nil
}

// GetPublicProfile retrieves a user's profile and links by username,
// newest link first. This is the only unauthenticated read.
func (s *ProfileService) GetPublicProfile(ctx context.Context, username string) (*models.User, []models.Link, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	var links []models.Link
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", user.ID).
		Order("id DESC").
		Find(&links).Error; err != nil {
		return nil, nil, err
	}

	return &user, links, nil
}
