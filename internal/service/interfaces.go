package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/biopage/backend/internal/models"
	"github.com/biopage/backend/internal/types"
)

// IAuthService defines account and token operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, identifier, password string) (string, error)
	Recover(ctx context.Context, identifier, birthday, newPassword string) error
	GenerateToken(claims *types.TokenClaims) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IProfileService defines profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (string, error)
	GetPublicProfile(ctx context.Context, username string) (*models.User, []models.Link, error)
}

// ILinkService defines link operations for the owning user
type ILinkService interface {
	ListLinks(ctx context.Context, userID uuid.UUID) ([]models.Link, error)
	CreateLink(ctx context.Context, userID uuid.UUID, title, url string) (*models.Link, error)
	DeleteLink(ctx context.Context, userID uuid.UUID, linkID uint) error
}

// IImageService defines the image hosting collaborator contract
type IImageService interface {
	UploadProfileImage(ctx context.Context, data []byte, fileName string) (string, error)
}
