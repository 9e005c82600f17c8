package playground

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to the code playground
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	playground := r.Group("/playground")
	{
		playground.GET("/", GetSnippets)
		playground.POST("/save", SaveSnippet)
		playground.DELETE("/:id", DeleteSnippet)
	}
}
