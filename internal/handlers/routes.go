package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "cloud-demo-apps/docs"
	"cloud-demo-apps/internal/middleware"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	Profile  Profile
	Hostname HostnameFunc
}

// SetupRoutes configures the routes of the selected profile
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	webHandler := NewWebHandler(config.Profile, config.Hostname)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", webHandler.Health)

	if config.Profile.IndexMessage != "" {
		router.GET("/", webHandler.Index)
	}

	api := router.Group("/api")
	{
		api.POST("/echo", middleware.ContentTypeValidation(), webHandler.Echo)

		if config.Profile.API {
			api.GET("/hello", webHandler.Hello)
			api.GET("/node", webHandler.Node)
		}
	}
}
