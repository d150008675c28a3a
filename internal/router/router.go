package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/biopage/backend/internal/api"
	"github.com/biopage/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	profileHandler *api.ProfileHandler,
	linkHandler *api.LinkHandler,
	publicHandler *api.PublicHandler,
	validator middleware.TokenValidator,
) *gin.Engine {
	router := gin.Default()

	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	root := router.Group("/api")

	// Auth routes
	auth := root.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/recover", authHandler.Recover)
	}

	// Profile routes
	user := root.Group("/user")
	user.Use(middleware.AuthMiddleware(validator))
	{
		user.GET("/profile", profileHandler.GetProfile)
		user.PUT("/profile", profileHandler.UpdateProfile)
	}

	// Link routes
	links := root.Group("/links")
	links.Use(middleware.AuthMiddleware(validator))
	{
		links.GET("", linkHandler.ListLinks)
		links.POST("", linkHandler.CreateLink)
		links.DELETE("/:id", linkHandler.DeleteLink)
	}

	// Public page data, the only endpoint with no identity check
	root.GET("/u/:username", publicHandler.GetPublicProfile)

	return router
}
