package types

import "github.com/google/uuid"

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Birthday        string `json:"birthday" binding:"required"`
}

// LoginRequest represents the request body for logging in. Identifier is a
// username or an email, accepted interchangeably.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// RecoverRequest represents the request body for birthday-based password
// recovery
type RecoverRequest struct {
	Identifier  string `json:"identifier" binding:"required"`
	Birthday    string `json:"birthday" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// UpdateProfileRequest represents the request body for a profile update.
// ImageBase64 is optional; when absent the stored image URL is retained.
type UpdateProfileRequest struct {
	Name        string  `json:"name"`
	Quotes      string  `json:"quotes"`
	ImageBase64 *string `json:"imageBase64,omitempty"`
}

// CreateLinkRequest represents the request body for adding a link
type CreateLinkRequest struct {
	Title string `json:"title" binding:"required"`
	URL   string `json:"url" binding:"required"`
}

// UserSummary is the registration response body. It never carries the
// password hash.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
}

// ProfileResponse is the authenticated and public view of a profile
type ProfileResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Quotes   string `json:"quotes"`
	ImageURL string `json:"imageUrl"`
}
