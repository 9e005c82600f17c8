package leaderboard

import (
	"log"
	"net/http"
	"time"

	"zen-api/database"
	"zen-api/metrics"
	"zen-api/middleware"
	"zen-api/models"
	"zen-api/realtime"
	"zen-api/utils"
	"zen-api/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Constants for error messages and cache settings
const (
	ErrLeaderboardFailed = "Failed to fetch leaderboard"
	ErrAnalyticsFailed   = "Failed to fetch analytics"
	ErrAdminOnly         = "Admin access required"

	LeaderboardCacheKey      = "leaderboard"
	LeaderboardCacheDuration = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Entry is one leaderboard row
type Entry struct {
	Rank        int    `json:"rank"`
	Username    string `json:"username"`
	TotalPoints int    `json:"total_points"`
}

// AnalyticsResponse summarizes platform usage for the admin screen
type AnalyticsResponse struct {
	TotalUsers        int64            `json:"totalUsers"`
	UsersWithProgress int64            `json:"usersWithProgress"`
	SectionCounts     map[string]int64 `json:"sectionCounts"`
}

// GetLeaderboard lists regular users ordered by points
// @Summary Get leaderboard
// @Description Regular users ordered by total points descending, with rank positions
// @Tags Leaderboard
// @Produce json
// @Success 200 {array} Entry
// @Failure 500 {object} map[string]string
// @Router /leaderboard [get]
func GetLeaderboard(c *gin.Context) {
	if database.REDIS != nil {
		cached, err := database.REDIS.Get(c.Request.Context(), LeaderboardCacheKey).Result()
		if err == nil && cached != "" {
			var entries []Entry
			if err := utils.UnmarshalJSON([]byte(cached), &entries); err == nil {
				metrics.CacheHits.Inc()
				c.JSON(http.StatusOK, entries)
				return
			}
		}
		metrics.CacheMisses.Inc()
	}

	var users []models.User
	err := database.DB.
		Where("admin_level = ?", models.AdminLevelUser).
		Order("total_points DESC").
		Find(&users).Error
	if err != nil {
		log.Printf("Leaderboard query error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrLeaderboardFailed)
		return
	}

	entries := make([]Entry, 0, len(users))
	for i, user := range users {
		entries = append(entries, Entry{
			Rank:        i + 1,
			Username:    user.Username,
			TotalPoints: user.TotalPoints,
		})
	}

	if database.REDIS != nil {
		if data, err := utils.MarshalJSON(entries); err == nil {
			if err := database.REDIS.Set(c.Request.Context(), LeaderboardCacheKey, data, LeaderboardCacheDuration).Err(); err != nil {
				log.Printf("Failed to cache leaderboard: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, entries)
}

// InvalidateLeaderboardCache drops the cached leaderboard after a points change
func InvalidateLeaderboardCache(c *gin.Context) {
	if database.REDIS == nil {
		return
	}
	if err := database.REDIS.Del(c.Request.Context(), LeaderboardCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate leaderboard cache: %v", err)
	}
}

// LeaderboardWebSocket streams score updates to connected clients
// @Summary Leaderboard live feed
// @Description WebSocket feed of score updates as correct submissions land
// @Tags Leaderboard
// @Router /leaderboard/ws [get]
func LeaderboardWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	realtime.RegisterClient(conn)
	defer func() {
		realtime.UnregisterClient(conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// GetAnalytics summarizes user counts and per-section engagement
// @Summary Get analytics
// @Description Total users, users with any progress, and distinct users per category; admin only
// @Tags Leaderboard
// @Produce json
// @Success 200 {object} AnalyticsResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/analytics [get]
// @Security Bearer
func GetAnalytics(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}
	if !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrAdminOnly)
		return
	}

	var totalUsers int64
	if err := database.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		log.Printf("Analytics user count error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrAnalyticsFailed)
		return
	}

	var usersWithProgress int64
	err = database.DB.Model(&models.UserProgress{}).
		Distinct("user_id").Count(&usersWithProgress).Error
	if err != nil {
		log.Printf("Analytics progress count error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrAnalyticsFailed)
		return
	}

	var categories []models.QuizCategory
	if err := database.DB.Find(&categories).Error; err != nil {
		log.Printf("Analytics category fetch error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrAnalyticsFailed)
		return
	}

	sectionCounts := make(map[string]int64, len(categories))
	for _, category := range categories {
		var count int64
		err := database.DB.Model(&models.UserProgress{}).
			Where("quiz_category_id = ?", category.ID).
			Distinct("user_id").Count(&count).Error
		if err != nil {
			log.Printf("Analytics section count error for category %d: %v", category.ID, err)
			response.Error(c, http.StatusInternalServerError, ErrAnalyticsFailed)
			return
		}
		sectionCounts[category.Name] = count
	}

	c.JSON(http.StatusOK, AnalyticsResponse{
		TotalUsers:        totalUsers,
		UsersWithProgress: usersWithProgress,
		SectionCounts:     sectionCounts,
	})
}
