package leaderboard

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the leaderboard and analytics routes
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	r.GET("/leaderboard", GetLeaderboard)
	r.GET("/leaderboard/ws", LeaderboardWebSocket)
	r.GET("/admin/analytics", GetAnalytics)
}
