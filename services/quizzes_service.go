package services

import (
	"errors"
	"fmt"

	"zen-api/database"
	"zen-api/models"

	"gorm.io/gorm"
)

// DeleteQuizGuarded deletes a quiz unless any result references it. Quizzes
// with recorded history are delete-protected.
func DeleteQuizGuarded(quizID uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var quiz models.Quiz
		if err := tx.First(&quiz, quizID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQuizNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.QuizResult{}).Where("quiz_id = ?", quizID).Limit(1).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check results: %w", err)
		}
		if count > 0 {
			return ErrQuizHasResults
		}

		// Attempts carry no scoring history, they go with the quiz
		if err := tx.Where("quiz_id = ?", quizID).Delete(&models.QuizAttempt{}).Error; err != nil {
			return fmt.Errorf("failed to delete attempts: %w", err)
		}

		return tx.Delete(&models.Quiz{}, quizID).Error
	})
}
