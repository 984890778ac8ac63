package server

import (
	"github.com/gin-gonic/gin"

	"cloud-demo-apps/internal/handlers"
	"cloud-demo-apps/internal/middleware"
)

// NewRouter builds the gin engine with middleware and the profile's routes
func NewRouter(c *Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger())
	router.Use(middleware.SlowRequestLogger(0))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimiter(c.Config.RateLimit.RequestsPerSecond, c.Config.RateLimit.Burst))
	router.Use(middleware.RequestSizeLimit(c.Config.MaxBodyBytes))

	handlers.SetupRoutes(router, &handlers.RouterConfig{
		Profile:  c.Profile,
		Hostname: c.Hostname,
	})

	return router
}
