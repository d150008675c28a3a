package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/biopage/backend/internal/models"
	"github.com/biopage/backend/internal/types"
)

// MockAuthService is a testify mock for service.IAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, identifier, password string) (string, error) {
	args := m.Called(ctx, identifier, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Recover(ctx context.Context, identifier, birthday, newPassword string) error {
	args := m.Called(ctx, identifier, birthday, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) GenerateToken(claims *types.TokenClaims) (string, error) {
	args := m.Called(claims)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

// MockProfileService is a testify mock for service.IProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (string, error) {
	args := m.Called(ctx, userID, req)
	return args.String(0), args.Error(1)
}

func (m *MockProfileService) GetPublicProfile(ctx context.Context, username string) (*models.User, []models.Link, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.User), args.Get(1).([]models.Link), args.Error(2)
}

// MockLinkService is a testify mock for service.ILinkService
type MockLinkService struct {
	mock.Mock
}

func (m *MockLinkService) ListLinks(ctx context.Context, userID uuid.UUID) ([]models.Link, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Link), args.Error(1)
}

func (m *MockLinkService) CreateLink(ctx context.Context, userID uuid.UUID, title, url string) (*models.Link, error) {
	args := m.Called(ctx, userID, title, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Link), args.Error(1)
}

func (m *MockLinkService) DeleteLink(ctx context.Context, userID uuid.UUID, linkID uint) error {
	args := m.Called(ctx, userID, linkID)
	return args.Error(0)
}

// MockImageService is a testify mock for service.IImageService
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) UploadProfileImage(ctx context.Context, data []byte, fileName string) (string, error) {
	args := m.Called(ctx, data, fileName)
	return args.String(0), args.Error(1)
}
