package main

import (
	"net/http"
	"time"

	"antiques-backend/internal/shared/middleware"
	"antiques-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Wrong-method requests get a 405 instead of gin's default 404.
	router.HandleMethodNotAllowed = true

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// Uploaded images are served straight from disk under the same paths the
	// catalog records reference.
	router.Static(c.Config.Storage.PublicBasePath, c.Config.Storage.UploadDir)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupItemRoutes(api, c)
		setupImageRoutes(api, c)
		setupMetadataRoutes(api, c)
		setupAuthRoutes(api, c)
	}

	return router
}

// ========================================
// ITEM ROUTES
// ========================================
func setupItemRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/create-item", c.ItemHandler.Create)
	api.POST("/update-item", c.ItemHandler.Update)
	api.POST("/delete-item", c.ItemHandler.Delete)
	api.GET("/get-item", c.ItemHandler.Get)
	api.GET("/get-items", c.ItemHandler.List)
}

// ========================================
// IMAGE ROUTES
// ========================================
func setupImageRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/upload-item-images", c.ImageHandler.Upload)
	api.POST("/delete-item-image", c.ImageHandler.DeleteImage)
	api.GET("/list-item-images", c.ImageHandler.ListImages)
}

// ========================================
// METADATA ROUTES
// ========================================
func setupMetadataRoutes(api *gin.RouterGroup, c *container.Container) {
	metadata := api.Group("/metadata")
	{
		metadata.GET("/:kind", c.MetadataHandler.List)
		metadata.POST("/:kind", c.MetadataHandler.Add)
		metadata.PUT("/:kind/:id", c.MetadataHandler.Update)
		metadata.DELETE("/:kind/:id", c.MetadataHandler.Delete)
	}
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.GET("/verify", middleware.AuthMiddleware(c.JWTManager), c.AuthHandler.Verify)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   c.Config.App.Version,
		})
	}
}
