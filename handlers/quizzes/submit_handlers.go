package quizzes

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"zen-api/database"
	"zen-api/handlers/leaderboard"
	"zen-api/handlers/users"
	"zen-api/metrics"
	"zen-api/middleware"
	"zen-api/models"
	"zen-api/realtime"
	"zen-api/services"
	"zen-api/utils/response"

	"github.com/gin-gonic/gin"
)

// SubmitAnswer records an answer submission and updates points and progress
// @Summary Submit an answer
// @Description Record one answer submission; a correct answer awards the quiz's points and updates category progress
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param request body SubmitRequest true "Submission"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /quiz/submit [post]
// @Security Bearer
func SubmitAnswer(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	isCorrect := *req.IsCorrect
	if err := services.SubmitAnswer(user.ID, req.QuizID, isCorrect); err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			response.Error(c, http.StatusNotFound, ErrQuizNotFound)
			return
		}
		log.Printf("Submission error for user %d quiz %d: %v", user.ID, req.QuizID, err)
		response.Error(c, http.StatusInternalServerError, ErrSubmitFailed)
		return
	}

	metrics.QuizSubmissions.WithLabelValues(strconv.FormatBool(isCorrect)).Inc()

	if isCorrect {
		// Points changed: every cache derived from them is now stale
		middleware.InvalidateUserCache(c, user.ID)
		users.InvalidateDashboardCache(c, user.ID)
		leaderboard.InvalidateLeaderboardCache(c)
		notifyScoreChange(user.ID)
	}

	response.Success(c)
}

// notifyScoreChange pushes the user's fresh total to leaderboard watchers
func notifyScoreChange(userID uint) {
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		log.Printf("Failed to load user %d for score broadcast: %v", userID, err)
		return
	}
	go realtime.BroadcastScoreUpdate(realtime.ScoreUpdate{
		UserID:      user.ID,
		Username:    user.Username,
		TotalPoints: user.TotalPoints,
	})
}
