package users

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to users and profiles
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	user := r.Group("/user")
	{
		user.GET("/profile", GetUserProfile)
		user.GET("/dashboard", GetDashboard)

		user.GET("/", GetUsers)
		user.POST("/", CreateUser)
		user.PUT("/:id/role", ChangeUserRole)
		user.DELETE("/:id", DeleteUser)
	}

	profile := r.Group("/profile")
	{
		profile.GET("/progress", GetProgress)
	}
}
