package community

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to community reviews
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	community := r.Group("/community")
	{
		community.GET("/", GetPosts)
		community.POST("/", CreatePost)
		community.PUT("/", ReplyToPost)
		community.PATCH("/", PatchPost)
		community.DELETE("/", DeletePost)
	}
}
