package users

import (
	"log"
	"net/http"
	"strconv"

	"zen-api/database"
	"zen-api/metrics"
	"zen-api/middleware"
	"zen-api/models"
	"zen-api/services"
	"zen-api/utils"
	"zen-api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetUserProfile retrieves the authenticated user's profile
// @Summary Get User Profile
// @Description Get the profile information of the authenticated user
// @Tags Users
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /user/profile [get]
// @Security Bearer
func GetUserProfile(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	c.JSON(http.StatusOK, user)
}

// GetProgress lists the user's in-progress quizzes
// @Summary List in-progress quizzes
// @Description All IN_PROGRESS attempts joined with quiz info, deduplicated per quiz
// @Tags Users
// @Produce json
// @Success 200 {object} ProgressResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /profile/progress [get]
// @Security Bearer
func GetProgress(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	attempts, err := services.ListInProgress(user.ID)
	if err != nil {
		log.Printf("Progress listing error for user %d: %v", user.ID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedToGetProgress)
		return
	}

	c.JSON(http.StatusOK, ProgressResponse{Attempts: attempts})
}

// GetDashboard returns the user's points and per-category completion summary
// @Summary Get dashboard
// @Description Total points, total completed submissions and per-category progress
// @Tags Users
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /user/dashboard [get]
// @Security Bearer
func GetDashboard(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	cacheKey := dashboardCacheKey(user.ID)
	if database.REDIS != nil {
		cached, err := database.REDIS.Get(c.Request.Context(), cacheKey).Result()
		if err == nil && cached != "" {
			var dashboard DashboardResponse
			if err := utils.UnmarshalJSON([]byte(cached), &dashboard); err == nil {
				metrics.CacheHits.Inc()
				c.JSON(http.StatusOK, dashboard)
				return
			}
		}
		metrics.CacheMisses.Inc()
	}

	var categories []models.QuizCategory
	if err := database.DB.Find(&categories).Error; err != nil {
		log.Printf("Dashboard category fetch error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedToGetProgress)
		return
	}

	var progress []models.UserProgress
	if err := database.DB.Where("user_id = ?", user.ID).Find(&progress).Error; err != nil {
		log.Printf("Dashboard progress fetch error for user %d: %v", user.ID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedToGetProgress)
		return
	}

	byCategory := make(map[uint]models.UserProgress, len(progress))
	totalCompleted := 0
	for _, p := range progress {
		byCategory[p.QuizCategoryID] = p
		totalCompleted += p.CompletedQuizzes
	}

	dashboard := DashboardResponse{
		TotalPoints:    user.TotalPoints,
		TotalCompleted: totalCompleted,
		Categories:     make([]DashboardCategory, 0, len(categories)),
	}
	for _, category := range categories {
		p := byCategory[category.ID]
		dashboard.Categories = append(dashboard.Categories, DashboardCategory{
			ID:        category.ID,
			Name:      category.Name,
			Completed: p.CompletedQuizzes,
			Total:     p.TotalQuizzes,
			Progress:  p.CompletionPercentage,
		})
	}

	if database.REDIS != nil {
		if data, err := utils.MarshalJSON(dashboard); err == nil {
			if err := database.REDIS.Set(c.Request.Context(), cacheKey, data, DashboardCacheDuration).Err(); err != nil {
				log.Printf("Failed to cache dashboard for user %d: %v", user.ID, err)
			}
		}
	}

	c.JSON(http.StatusOK, dashboard)
}

// InvalidateDashboardCache drops the cached dashboard after a points change
func InvalidateDashboardCache(c *gin.Context, userID uint) {
	if database.REDIS == nil {
		return
	}
	if err := database.REDIS.Del(c.Request.Context(), dashboardCacheKey(userID)).Err(); err != nil {
		log.Printf("Failed to invalidate dashboard cache for %d: %v", userID, err)
	}
}

func dashboardCacheKey(userID uint) string {
	return DashboardCacheKeyPrefix + strconv.FormatUint(uint64(userID), 10)
}
