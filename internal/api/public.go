package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/biopage/backend/internal/service"
	"github.com/biopage/backend/internal/types"
)

// PublicHandler serves the unauthenticated per-username page data
type PublicHandler struct {
	profileService service.IProfileService
}

func NewPublicHandler(profileService service.IProfileService) *PublicHandler {
	return &PublicHandler{profileService: profileService}
}

func (h *PublicHandler) GetPublicProfile(c *gin.Context) {
	username := c.Param("username")

	user, links, err := h.profileService.GetPublicProfile(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Printf("[PublicHandler] public profile lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": types.ProfileResponse{
			Username: user.Username,
			Name:     user.Name,
			Quotes:   user.Quotes,
			ImageURL: user.ProfileImageURL,
		},
		"links": links,
	})
}
