package auth

import (
	"errors"
	"log"
	"net/http"
	"time"

	"zen-api/database"
	"zen-api/middleware"
	"zen-api/models"
	"zen-api/utils"
	"zen-api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterUser creates a new account
// @Summary Register
// @Description Create a new user account with the Beginner rank
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/register [post]
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var existing models.User
	err := database.DB.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing).Error
	if err == nil {
		response.Error(c, http.StatusBadRequest, ErrUserExists)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Registration lookup error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrUserLookupFailed)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrHashPasswordFailed)
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		UniqueInfo:   req.UniqueInfo,
		AdminLevel:   models.AdminLevelUser,
	}

	// New accounts start at the lowest tier
	var beginner models.UserRanking
	if err := database.DB.Order("min_points ASC").First(&beginner).Error; err == nil {
		user.RankID = &beginner.ID
	}

	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Error(c, http.StatusBadRequest, ErrUserExists)
			return
		}
		log.Printf("Registration insert error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrUserCreateFailed)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		UserID:     user.ID,
		Username:   user.Username,
		Email:      user.Email,
		AdminLevel: user.AdminLevel,
	})
}

// Login authenticates a user and sets the session cookie
// @Summary Login
// @Description Authenticate with email and password, sets an httpOnly JWT cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidCredentials)
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		response.Error(c, http.StatusBadRequest, ErrInvalidCredentials)
		return
	}

	lifetime := 24 * time.Hour
	if req.RememberMe {
		lifetime = 7 * 24 * time.Hour
	}
	token, err := middleware.GenerateToken(user.ID, lifetime)
	if err != nil {
		log.Printf("Token generation error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}

	setCookieToken(c, token, req.RememberMe)

	c.JSON(http.StatusOK, AuthResponse{
		UserID:      user.ID,
		Username:    user.Username,
		Email:       user.Email,
		AdminLevel:  user.AdminLevel,
		TotalPoints: user.TotalPoints,
	})
}

// CheckAuth verifies the current session
// @Summary Check session
// @Description Return the authenticated user's identity
// @Tags Auth
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 401 {object} map[string]string
// @Router /auth/check [get]
// @Security Bearer
func CheckAuth(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	c.JSON(http.StatusOK, AuthResponse{
		UserID:      user.ID,
		Username:    user.Username,
		Email:       user.Email,
		AdminLevel:  user.AdminLevel,
		TotalPoints: user.TotalPoints,
	})
}

// Logout clears the session cookie
// @Summary Logout
// @Description Clear the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", "", -1, "/", "", true, true)
	response.Success(c)
}
