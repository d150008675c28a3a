package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/biopage/backend/internal/service"
	"github.com/biopage/backend/internal/types"
)

// LinkHandler handles the authenticated user's link list
type LinkHandler struct {
	linkService service.ILinkService
}

func NewLinkHandler(linkService service.ILinkService) *LinkHandler {
	return &LinkHandler{linkService: linkService}
}

func (h *LinkHandler) ListLinks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	links, err := h.linkService.ListLinks(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[LinkHandler] list links failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list links"})
		return
	}

	c.JSON(http.StatusOK, links)
}

func (h *LinkHandler) CreateLink(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	link, err := h.linkService.CreateLink(c.Request.Context(), userID, req.Title, req.URL)
	if err != nil {
		log.Printf("[LinkHandler] create link failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create link"})
		return
	}

	c.JSON(http.StatusCreated, link)
}

func (h *LinkHandler) DeleteLink(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	linkID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid link id"})
		return
	}

	// A delete for a non-owned or nonexistent id affects nothing and still
	// answers with the same success message.
	if err := h.linkService.DeleteLink(c.Request.Context(), userID, uint(linkID)); err != nil {
		log.Printf("[LinkHandler] delete link failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "link deleted"})
}
