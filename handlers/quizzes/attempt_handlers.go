package quizzes

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"zen-api/database"
	"zen-api/middleware"
	"zen-api/models"
	"zen-api/services"
	"zen-api/utils/response"

	"github.com/gin-gonic/gin"
)

// SaveAttempt saves or transitions the resumable attempt for a quiz
// @Summary Save attempt progress
// @Description Update the IN_PROGRESS attempt in place (including status transitions) or start a new attempt cycle
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param request body AttemptRequest true "Attempt state"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /quiz/attempt [patch]
// @Security Bearer
func SaveAttempt(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var req AttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if !models.ValidAttemptStatus(req.Status) {
		response.Error(c, http.StatusBadRequest, ErrInvalidStatus)
		return
	}

	if err := services.SaveAttempt(user.ID, req.QuizID, req.CurrentStep, req.Status, req.TimeRemaining); err != nil {
		if errors.Is(err, services.ErrAttemptConflict) {
			response.Error(c, http.StatusConflict, "An attempt with this status already exists")
			return
		}
		log.Printf("Attempt save error for user %d quiz %d: %v", user.ID, req.QuizID, err)
		response.Error(c, http.StatusInternalServerError, ErrAttemptSaveFailed)
		return
	}

	response.Success(c)
}

// GetAttempt fetches the resumable attempt for a quiz
// @Summary Get attempt progress
// @Description Return the IN_PROGRESS attempt for the given quiz, or an empty object
// @Tags Quizzes
// @Produce json
// @Param quizId query int true "Quiz ID"
// @Success 200 {object} AttemptResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /quiz/attempt [get]
// @Security Bearer
func GetAttempt(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	quizID, err := strconv.ParseUint(c.Query("quizId"), 10, 64)
	if err != nil || quizID == 0 {
		response.Error(c, http.StatusBadRequest, ErrMissingQuizID)
		return
	}

	attempt, found, err := services.GetAttempt(user.ID, uint(quizID))
	if err != nil {
		log.Printf("Attempt fetch error for user %d quiz %d: %v", user.ID, quizID, err)
		response.Error(c, http.StatusInternalServerError, ErrAttemptFetchFailed)
		return
	}
	if !found {
		response.Empty(c)
		return
	}

	c.JSON(http.StatusOK, AttemptResponse{
		CurrentStep:   attempt.CurrentStep,
		TimeRemaining: attempt.TimeRemaining,
		Status:        attempt.Status,
	})
}

// ResumeQuiz returns the most recently updated in-progress attempt
// @Summary Resume latest quiz
// @Description Return the single most recently updated IN_PROGRESS attempt with quiz info, or an empty object
// @Tags Quizzes
// @Produce json
// @Success 200 {object} ResumeResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /quiz/resume [get]
// @Security Bearer
func ResumeQuiz(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	attempt, found, err := services.LatestInProgress(user.ID)
	if err != nil {
		log.Printf("Resume fetch error for user %d: %v", user.ID, err)
		response.Error(c, http.StatusInternalServerError, ErrAttemptFetchFailed)
		return
	}
	if !found {
		response.Empty(c)
		return
	}

	var quiz models.Quiz
	if err := database.DB.First(&quiz, attempt.QuizID).Error; err != nil {
		log.Printf("Resume quiz lookup error for quiz %d: %v", attempt.QuizID, err)
		response.Error(c, http.StatusInternalServerError, ErrAttemptFetchFailed)
		return
	}

	c.JSON(http.StatusOK, ResumeResponse{
		QuizID:     attempt.QuizID,
		Title:      quiz.Title,
		CategoryID: quiz.QuizCategoryID,
		Status:     attempt.Status,
	})
}
