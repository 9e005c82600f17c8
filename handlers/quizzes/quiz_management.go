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
	"zen-api/utils"
	"zen-api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetQuizzes lists all quizzes with category and challenge type names
// @Summary List quizzes
// @Description List all quizzes joined with category and challenge type names
// @Tags Quizzes
// @Produce json
// @Success 200 {array} QuizListItem
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /quiz/ [get]
// @Security Bearer
func GetQuizzes(c *gin.Context) {
	if _, err := middleware.GetUserFromRequest(c); err != nil {
		return // Error already handled by middleware
	}

	var items []QuizListItem
	err := database.DB.Model(&models.Quiz{}).
		Select(`quizzes.id, quizzes.title, quizzes.description, quizzes.points,
			quizzes.difficulty, quizzes.time_limit, quizzes.quiz_category_id,
			quiz_categories.name AS category_name, quizzes.challenge_type_id,
			challenge_types.name AS challenge_type_name`).
		Joins("LEFT JOIN quiz_categories ON quiz_categories.id = quizzes.quiz_category_id").
		Joins("LEFT JOIN challenge_types ON challenge_types.id = quizzes.challenge_type_id").
		Scan(&items).Error
	if err != nil {
		log.Printf("Quiz listing error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrQuizFetchFailed)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetCategories lists all quiz categories with their challenge types
// @Summary List categories
// @Description List all quiz categories with their challenge types
// @Tags Quizzes
// @Produce json
// @Success 200 {array} models.QuizCategory
// @Failure 500 {object} map[string]string
// @Router /quiz/categories [get]
func GetCategories(c *gin.Context) {
	var categories []models.QuizCategory
	if err := database.DB.Preload("ChallengeTypes").Find(&categories).Error; err != nil {
		log.Printf("Category listing error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrQuizFetchFailed)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateQuiz creates a new quiz
// @Summary Create quiz
// @Description Create a new quiz; admin only
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param request body QuizRequest true "Quiz"
// @Success 201 {object} models.Quiz
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /quiz/ [post]
// @Security Bearer
func CreateQuiz(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}
	if !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrAdminOnly)
		return
	}

	quiz, ok := quizFromRequest(c)
	if !ok {
		return
	}

	if err := database.DB.Create(quiz).Error; err != nil {
		log.Printf("Quiz create error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrQuizCreateFailed)
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

// UpdateQuiz updates an existing quiz
// @Summary Update quiz
// @Description Update an existing quiz; admin only
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param request body QuizRequest true "Quiz"
// @Success 200 {object} models.Quiz
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /quiz/{id} [put]
// @Security Bearer
func UpdateQuiz(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}
	if !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrAdminOnly)
		return
	}

	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || quizID == 0 {
		response.Error(c, http.StatusBadRequest, ErrMissingQuizID)
		return
	}

	var existing models.Quiz
	if err := database.DB.First(&existing, quizID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrQuizNotFound)
		return
	}

	quiz, ok := quizFromRequest(c)
	if !ok {
		return
	}
	quiz.ID = existing.ID

	if err := database.DB.Save(quiz).Error; err != nil {
		log.Printf("Quiz update error for quiz %d: %v", quizID, err)
		response.Error(c, http.StatusInternalServerError, ErrQuizUpdateFailed)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// DeleteQuiz deletes a quiz unless results reference it
// @Summary Delete quiz
// @Description Delete a quiz; refused with 409 when any result references it
// @Tags Quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /quiz/{id} [delete]
// @Security Bearer
func DeleteQuiz(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}
	if !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrAdminOnly)
		return
	}

	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || quizID == 0 {
		response.Error(c, http.StatusBadRequest, ErrMissingQuizID)
		return
	}

	if err := services.DeleteQuizGuarded(uint(quizID)); err != nil {
		switch {
		case errors.Is(err, services.ErrQuizNotFound):
			response.Error(c, http.StatusNotFound, ErrQuizNotFound)
		case errors.Is(err, services.ErrQuizHasResults):
			response.Error(c, http.StatusConflict, ErrQuizHasResults)
		default:
			log.Printf("Quiz delete error for quiz %d: %v", quizID, err)
			response.Error(c, http.StatusInternalServerError, ErrQuizDeleteFailed)
		}
		return
	}

	response.Success(c)
}

// quizFromRequest binds and validates the quiz payload. On failure it writes
// the 400 response and returns ok=false.
func quizFromRequest(c *gin.Context) (*models.Quiz, bool) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return nil, false
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}
	if !models.ValidDifficulty(difficulty) {
		response.Error(c, http.StatusBadRequest, "Invalid difficulty")
		return nil, false
	}

	var options []byte
	if req.Options != nil {
		data, err := utils.MarshalJSON(req.Options)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid options")
			return nil, false
		}
		options = data
	}

	return &models.Quiz{
		Title:           req.Title,
		Description:     req.Description,
		Points:          req.Points,
		Answer:          req.Answer,
		Explanation:     req.Explanation,
		Difficulty:      difficulty,
		TimeLimit:       req.TimeLimit,
		Options:         options,
		QuizCategoryID:  req.QuizCategoryID,
		ChallengeTypeID: req.ChallengeTypeID,
	}, true
}
