package v1

import (
	"zen-api/handlers/auth"
	"zen-api/handlers/community"
	"zen-api/handlers/leaderboard"
	"zen-api/handlers/playground"
	"zen-api/handlers/quizzes"
	"zen-api/handlers/users"
	"zen-api/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	auth.RegisterRoutes(v1)
	quizzes.RegisterRoutes(v1)
	users.RegisterRoutes(v1)
	community.RegisterRoutes(v1)
	playground.RegisterRoutes(v1)
	leaderboard.RegisterRoutes(v1)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}

// RegisterPingRoutes registers the health check route
func RegisterPingRoutes(r *gin.RouterGroup) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
