package users

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"zen-api/config"
	"zen-api/database"
	"zen-api/middleware"
	"zen-api/models"
	"zen-api/services"
	"zen-api/utils"
	"zen-api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetUsers lists all users with rank names for the admin table
// @Summary List users
// @Description List all users with their rank; admin only
// @Tags Users
// @Produce json
// @Success 200 {array} UserListItem
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /user/ [get]
// @Security Bearer
func GetUsers(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}
	if !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrAdminOnly)
		return
	}

	var items []UserListItem
	err = database.DB.Model(&models.User{}).
		Select(`users.id, users.username, users.email, users.admin_level,
			users.total_points, user_rankings.rank_name`).
		Joins("LEFT JOIN user_rankings ON user_rankings.id = users.rank_id").
		Scan(&items).Error
	if err != nil {
		log.Printf("User listing error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedToGetUsers)
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateUser creates an account on behalf of an admin
// @Summary Create user
// @Description Create a user account; admin only. The account gets the configured default password, or a random one when none is configured.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "New user"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /user/ [post]
// @Security Bearer
func CreateUser(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}
	if !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrAdminOnly)
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	level := models.AdminLevelUser
	if req.AdminLevel != nil {
		level = *req.AdminLevel
		if level < models.AdminLevelSuperAdmin || level > models.AdminLevelUser {
			response.Error(c, http.StatusBadRequest, ErrInvalidRole)
			return
		}
	}

	var hash string
	if config.DefaultPassword != "" {
		hash, err = utils.HashPassword(config.DefaultPassword)
	} else {
		hash, err = utils.CreateDefaultPassword()
	}
	if err != nil {
		log.Printf("Default password error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrUserCreateFailed)
		return
	}

	account := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		UniqueInfo:   req.UniqueInfo,
		AdminLevel:   level,
	}

	// New accounts start at the lowest tier
	var beginner models.UserRanking
	if err := database.DB.Order("min_points ASC").First(&beginner).Error; err == nil {
		account.RankID = &beginner.ID
	}

	if err := database.DB.Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Error(c, http.StatusBadRequest, ErrUserExists)
			return
		}
		log.Printf("User create error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrUserCreateFailed)
		return
	}

	c.JSON(http.StatusCreated, account)
}

// ChangeUserRole sets a user's admin level
// @Summary Change user role
// @Description Set a user's admin level; super admin only, self-demotion refused
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body ChangeRoleRequest true "New admin level"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /user/{id}/role [put]
// @Security Bearer
func ChangeUserRole(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}
	if !user.IsSuperAdmin() {
		response.Error(c, http.StatusForbidden, ErrSuperAdminOnly)
		return
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || targetID == 0 {
		response.Error(c, http.StatusBadRequest, ErrUserNotFound)
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	level := *req.AdminLevel
	if level < models.AdminLevelSuperAdmin || level > models.AdminLevelUser {
		response.Error(c, http.StatusBadRequest, ErrInvalidRole)
		return
	}

	if err := services.ChangeUserRole(user.ID, uint(targetID), level); err != nil {
		switch {
		case errors.Is(err, services.ErrSelfDemotion):
			response.Error(c, http.StatusConflict, ErrSelfRoleChange)
		case errors.Is(err, services.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, ErrUserNotFound)
		default:
			log.Printf("Role change error for user %d: %v", targetID, err)
			response.Error(c, http.StatusInternalServerError, ErrRoleChangeFailed)
		}
		return
	}

	middleware.InvalidateUserCache(c, uint(targetID))
	response.Success(c)
}

// DeleteUser removes a user and all dependent rows
// @Summary Delete user
// @Description Delete a user and every dependent row; super admin only, self-delete refused
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /user/{id} [delete]
// @Security Bearer
func DeleteUser(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}
	if !user.IsSuperAdmin() {
		response.Error(c, http.StatusForbidden, ErrSuperAdminOnly)
		return
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || targetID == 0 {
		response.Error(c, http.StatusBadRequest, ErrUserNotFound)
		return
	}
	if uint(targetID) == user.ID {
		response.Error(c, http.StatusConflict, ErrSelfDelete)
		return
	}

	if err := services.DeleteUserCascade(uint(targetID)); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, ErrUserNotFound)
			return
		}
		log.Printf("User delete error for user %d: %v", targetID, err)
		response.Error(c, http.StatusInternalServerError, ErrUserDeleteFailed)
		return
	}

	middleware.InvalidateUserCache(c, uint(targetID))
	response.Success(c)
}
