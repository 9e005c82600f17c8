package quizzes

import (
	"log"
	"net/http"
	"strconv"

	"zen-api/middleware"
	"zen-api/services"
	"zen-api/utils/response"

	"github.com/gin-gonic/gin"
)

// SaveBookmark overwrites the category resume pointer
// @Summary Save bookmark
// @Description Save the last quiz and question index reached in a category
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param request body BookmarkRequest true "Bookmark"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /quiz/bookmark [patch]
// @Security Bearer
func SaveBookmark(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var req BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := services.SaveBookmark(user.ID, req.QuizCategoryID, req.LastQuizID, req.LastQuestionIndex); err != nil {
		log.Printf("Bookmark save error for user %d category %d: %v", user.ID, req.QuizCategoryID, err)
		response.Error(c, http.StatusInternalServerError, ErrBookmarkSaveFailed)
		return
	}

	response.Success(c)
}

// GetBookmark fetches the category resume pointer
// @Summary Get bookmark
// @Description Return the saved bookmark for a category, or an empty object
// @Tags Quizzes
// @Produce json
// @Param quizCategoryId query int true "Quiz category ID"
// @Success 200 {object} BookmarkResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /quiz/bookmark [get]
// @Security Bearer
func GetBookmark(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	categoryID, err := strconv.ParseUint(c.Query("quizCategoryId"), 10, 64)
	if err != nil || categoryID == 0 {
		response.Error(c, http.StatusBadRequest, ErrMissingCategoryID)
		return
	}

	progress, found, err := services.GetBookmark(user.ID, uint(categoryID))
	if err != nil {
		log.Printf("Bookmark fetch error for user %d category %d: %v", user.ID, categoryID, err)
		response.Error(c, http.StatusInternalServerError, ErrBookmarkFetchFailed)
		return
	}
	if !found {
		response.Empty(c)
		return
	}

	c.JSON(http.StatusOK, BookmarkResponse{
		LastQuizID:        progress.LastQuizID,
		LastQuestionIndex: progress.LastQuestionIndex,
	})
}
