package community

import (
	"errors"
	"log"
	"net/http"

	"zen-api/database"
	"zen-api/middleware"
	"zen-api/models"
	"zen-api/utils/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetPosts lists all community reviews with authors, likes and replies
// @Summary List community posts
// @Description All reviews ordered newest first, with authors, likes and replies
// @Tags Community
// @Produce json
// @Success 200 {array} models.CommunityPost
// @Failure 500 {object} map[string]string
// @Router /community/ [get]
func GetPosts(c *gin.Context) {
	var posts []models.CommunityPost
	err := database.DB.
		Preload("User").
		Preload("Likes.User").
		Preload("Replies.User").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		log.Printf("Community listing error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrPostFetchFailed)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// CreatePost creates a new review
// @Summary Create community post
// @Description Create a review with a 1..5 star rating
// @Tags Community
// @Accept json
// @Produce json
// @Param request body CreatePostRequest true "Review"
// @Success 200 {object} models.CommunityPost
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /community/ [post]
// @Security Bearer
func CreatePost(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	post := models.CommunityPost{
		UserID:  user.ID,
		Content: req.Content,
		Rating:  req.Rating,
	}
	if err := database.DB.Create(&post).Error; err != nil {
		log.Printf("Community post create error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrPostCreateFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// ReplyToPost adds a reply to a post
// @Summary Reply to post
// @Description Add a reply to an existing review
// @Tags Community
// @Accept json
// @Produce json
// @Param request body ReplyRequest true "Reply"
// @Success 200 {object} models.CommunityReply
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /community/ [put]
// @Security Bearer
func ReplyToPost(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	if err := database.DB.First(&models.CommunityPost{}, req.PostID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrPostNotFound)
		return
	}

	reply := models.CommunityReply{
		PostID:  req.PostID,
		UserID:  user.ID,
		Content: req.Content,
	}
	if err := database.DB.Create(&reply).Error; err != nil {
		log.Printf("Community reply error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrReplyFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// PatchPost toggles a like or edits a post's content
// @Summary Like or edit post
// @Description With isLike set, toggles a like/dislike; otherwise edits content and rating
// @Tags Community
// @Accept json
// @Produce json
// @Param request body PatchPostRequest true "Patch"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /community/ [patch]
// @Security Bearer
func PatchPost(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var req PatchPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	if req.IsLike != nil {
		toggleLike(c, user.ID, req.PostID, *req.IsLike)
		return
	}
	editPost(c, user, req)
}

// toggleLike flips or removes the user's like on a post. Liking twice removes
// the like; switching between like and dislike updates the same row.
func toggleLike(c *gin.Context, userID uint, postID uint, isLike bool) {
	var existing models.CommunityLike
	err := database.DB.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
	switch {
	case err == nil && existing.IsLike == isLike:
		if err := database.DB.Delete(&existing).Error; err != nil {
			log.Printf("Like delete error: %v", err)
			response.Error(c, http.StatusInternalServerError, ErrLikeFailed)
			return
		}
		c.JSON(http.StatusOK, gin.H{"like": nil})
	case err == nil:
		existing.IsLike = isLike
		if err := database.DB.Save(&existing).Error; err != nil {
			log.Printf("Like update error: %v", err)
			response.Error(c, http.StatusInternalServerError, ErrLikeFailed)
			return
		}
		c.JSON(http.StatusOK, gin.H{"like": existing})
	case errors.Is(err, gorm.ErrRecordNotFound):
		like := models.CommunityLike{PostID: postID, UserID: userID, IsLike: isLike}
		if err := database.DB.Create(&like).Error; err != nil {
			log.Printf("Like create error: %v", err)
			response.Error(c, http.StatusInternalServerError, ErrLikeFailed)
			return
		}
		c.JSON(http.StatusOK, gin.H{"like": like})
	default:
		log.Printf("Like lookup error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrLikeFailed)
	}
}

// editPost updates a post's content and rating, owner or admin only
func editPost(c *gin.Context, user models.User, req PatchPostRequest) {
	if req.Content == "" || req.Rating < 1 || req.Rating > 5 {
		response.Error(c, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	var post models.CommunityPost
	if err := database.DB.First(&post, req.PostID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrPostNotFound)
		return
	}
	if post.UserID != user.ID && !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrForbidden)
		return
	}

	post.Content = req.Content
	post.Rating = req.Rating
	if err := database.DB.Save(&post).Error; err != nil {
		log.Printf("Post edit error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrPostUpdateFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// DeletePost removes a post with its likes and replies
// @Summary Delete post
// @Description Delete a review; owner or admin only. Likes and replies go first.
// @Tags Community
// @Accept json
// @Produce json
// @Param request body DeletePostRequest true "Post ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /community/ [delete]
// @Security Bearer
func DeletePost(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var req DeletePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidInput)
		return
	}

	var post models.CommunityPost
	if err := database.DB.First(&post, req.PostID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrPostNotFound)
		return
	}
	if post.UserID != user.ID && !user.IsAdmin() {
		response.Error(c, http.StatusForbidden, ErrForbidden)
		return
	}

	// Likes and replies reference the post, they go first
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.CommunityLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.CommunityReply{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		log.Printf("Post delete error: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrPostDeleteFailed)
		return
	}

	response.Success(c)
}
