package playground

import (
	"log"
	"net/http"
	"strconv"

	"zen-api/database"
	"zen-api/middleware"
	"zen-api/models"
	"zen-api/utils/response"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrEmptySnippet        = "At least one code section is required"
	ErrSnippetNotFound     = "Snippet not found"
	ErrSnippetSaveFailed   = "Failed to save snippet"
	ErrSnippetFetchFailed  = "Failed to fetch snippets"
	ErrSnippetDeleteFailed = "Failed to delete snippet"
)

// SaveSnippetRequest model for saving playground code
type SaveSnippetRequest struct {
	Title    string `json:"title"`
	HTMLCode string `json:"htmlCode"`
	CSSCode  string `json:"cssCode"`
	JSCode   string `json:"jsCode"`
}

// SaveSnippet stores a playground experiment
// @Summary Save snippet
// @Description Save the playground editors as a snippet; at least one section must be non-empty
// @Tags Playground
// @Accept json
// @Produce json
// @Param request body SaveSnippetRequest true "Snippet"
// @Success 201 {object} models.CodeSnippet
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /playground/save [post]
// @Security Bearer
func SaveSnippet(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var req SaveSnippetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.HTMLCode == "" && req.CSSCode == "" && req.JSCode == "" {
		response.Error(c, http.StatusBadRequest, ErrEmptySnippet)
		return
	}

	title := req.Title
	if title == "" {
		title = "Untitled Snippet"
	}

	snippet := models.CodeSnippet{
		UserID:   user.ID,
		Title:    title,
		HTMLCode: req.HTMLCode,
		CSSCode:  req.CSSCode,
		JSCode:   req.JSCode,
	}
	if err := database.DB.Create(&snippet).Error; err != nil {
		log.Printf("Snippet save error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrSnippetSaveFailed)
		return
	}

	c.JSON(http.StatusCreated, snippet)
}

// GetSnippets lists the user's saved snippets
// @Summary List snippets
// @Description List the authenticated user's snippets, newest first
// @Tags Playground
// @Produce json
// @Success 200 {array} models.CodeSnippet
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /playground/ [get]
// @Security Bearer
func GetSnippets(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var snippets []models.CodeSnippet
	if err := database.DB.Where("user_id = ?", user.ID).Order("updated_at DESC").Find(&snippets).Error; err != nil {
		log.Printf("Snippet listing error for user %d: %v", user.ID, err)
		response.Error(c, http.StatusInternalServerError, ErrSnippetFetchFailed)
		return
	}

	c.JSON(http.StatusOK, snippets)
}

// DeleteSnippet removes one of the user's snippets
// @Summary Delete snippet
// @Description Delete one of the authenticated user's snippets
// @Tags Playground
// @Produce json
// @Param id path int true "Snippet ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /playground/{id} [delete]
// @Security Bearer
func DeleteSnippet(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	snippetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || snippetID == 0 {
		response.Error(c, http.StatusBadRequest, ErrSnippetNotFound)
		return
	}

	res := database.DB.Where("id = ? AND user_id = ?", snippetID, user.ID).Delete(&models.CodeSnippet{})
	if res.Error != nil {
		log.Printf("Snippet delete error: %v", res.Error)
		response.Error(c, http.StatusInternalServerError, ErrSnippetDeleteFailed)
		return
	}
	if res.RowsAffected == 0 {
		response.Error(c, http.StatusNotFound, ErrSnippetNotFound)
		return
	}

	response.Success(c)
}
