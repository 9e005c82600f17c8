package services

import (
	"errors"
	"fmt"

	"zen-api/database"
	"zen-api/models"

	"gorm.io/gorm"
)

// DeleteUserCascade removes a user and every dependent row. The store does not
// cascade, so dependents go first to avoid foreign key violations.
func DeleteUserCascade(userID uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		deletes := []struct {
			model interface{}
			query string
		}{
			{&models.UserProgress{}, "user_id = ?"},
			{&models.QuizAttempt{}, "user_id = ?"},
			{&models.QuizResult{}, "user_id = ?"},
			{&models.CodeSnippet{}, "user_id = ?"},
			{&models.CommunityLike{}, "user_id = ?"},
			{&models.CommunityReply{}, "user_id = ?"},
			{&models.CommunityLike{}, "post_id IN (SELECT id FROM community_posts WHERE user_id = ?)"},
			{&models.CommunityReply{}, "post_id IN (SELECT id FROM community_posts WHERE user_id = ?)"},
			{&models.CommunityPost{}, "user_id = ?"},
		}
		for _, d := range deletes {
			if err := tx.Where(d.query, userID).Delete(d.model).Error; err != nil {
				return fmt.Errorf("failed to delete dependents: %w", err)
			}
		}

		return tx.Delete(&models.User{}, userID).Error
	})
}

// ChangeUserRole sets a user's admin level. actorID is the super admin making
// the change; changing one's own role is refused.
func ChangeUserRole(actorID uint, userID uint, adminLevel int) error {
	if actorID == userID && adminLevel != models.AdminLevelSuperAdmin {
		return ErrSelfDemotion
	}
	res := database.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("admin_level", adminLevel)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
