package services

import (
	"errors"
	"fmt"
	"time"

	"zen-api/database"
	"zen-api/metrics"
	"zen-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InProgressQuiz is an in-progress attempt joined with its quiz for listings
type InProgressQuiz struct {
	QuizID        uint   `json:"quizId"`
	Title         string `json:"title"`
	CategoryID    uint   `json:"categoryId"`
	ChallengeType uint   `json:"challengeType"`
	CurrentStep   int    `json:"currentStep"`
	Status        string `json:"status"`
	TimeRemaining int    `json:"timeRemaining"`
}

// SaveAttempt saves or transitions the resumable attempt for (user, quiz).
// An existing IN_PROGRESS row is updated in place, including its status field,
// which is how a transition to COMPLETED or ABANDONED is recorded. When no
// IN_PROGRESS row exists a fresh row is inserted, starting a new attempt
// cycle. Both paths are single statements guarded by the unique index on
// (user_id, quiz_id, status), so at most one IN_PROGRESS row can ever exist
// for the pair, whatever the interleaving. A save whose status collides with
// an existing row on either path returns ErrAttemptConflict rather than
// discarding the payload.
func SaveAttempt(userID uint, quizID uint, currentStep int, status string, timeRemaining int) error {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.QuizAttempt{}).
			Where("user_id = ? AND quiz_id = ? AND status = ?", userID, quizID, models.AttemptInProgress).
			Updates(map[string]interface{}{
				"current_step":   currentStep,
				"status":         status,
				"time_remaining": timeRemaining,
			})
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return ErrAttemptConflict
			}
			return fmt.Errorf("failed to update attempt: %w", res.Error)
		}
		if res.RowsAffected > 0 {
			return nil
		}

		attempt := models.QuizAttempt{
			UserID:        userID,
			QuizID:        quizID,
			CurrentStep:   currentStep,
			Status:        status,
			TimeRemaining: timeRemaining,
			StartedAt:     time.Now(),
		}
		res = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "quiz_id"}, {Name: "status"}},
			DoNothing: true,
		}).Create(&attempt)
		if res.Error != nil {
			return fmt.Errorf("failed to create attempt: %w", res.Error)
		}
		// Zero rows means a row with this exact status already exists, e.g. a
		// repeated COMPLETED save after an earlier completion. Swallowing the
		// payload would report success for a write that never landed.
		if res.RowsAffected == 0 {
			return ErrAttemptConflict
		}
		return nil
	})
	if err == nil {
		metrics.AttemptTransitions.WithLabelValues(status).Inc()
	}
	return err
}

// GetAttempt returns the resumable IN_PROGRESS attempt for (user, quiz), or
// found=false when there is none
func GetAttempt(userID uint, quizID uint) (models.QuizAttempt, bool, error) {
	var attempt models.QuizAttempt
	err := database.DB.
		Where("user_id = ? AND quiz_id = ? AND status = ?", userID, quizID, models.AttemptInProgress).
		First(&attempt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attempt, false, nil
	}
	if err != nil {
		return attempt, false, err
	}
	return attempt, true, nil
}

// LatestInProgress returns the user's most recently updated IN_PROGRESS
// attempt across all quizzes, or found=false when there is none
func LatestInProgress(userID uint) (models.QuizAttempt, bool, error) {
	var attempt models.QuizAttempt
	err := database.DB.
		Where("user_id = ? AND status = ?", userID, models.AttemptInProgress).
		Order("updated_at DESC").
		First(&attempt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attempt, false, nil
	}
	if err != nil {
		return attempt, false, err
	}
	return attempt, true, nil
}

// ListInProgress returns all IN_PROGRESS attempts for the user joined with
// quiz info, deduplicated by quiz keeping the attempt with the later
// updated_at
func ListInProgress(userID uint) ([]InProgressQuiz, error) {
	var attempts []models.QuizAttempt
	err := database.DB.
		Where("user_id = ? AND status = ?", userID, models.AttemptInProgress).
		Order("updated_at DESC").
		Find(&attempts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attempts: %w", err)
	}

	// Rows arrive newest first, so the first row seen per quiz wins
	seen := make(map[uint]bool, len(attempts))
	latest := attempts[:0]
	quizIDs := make([]uint, 0, len(attempts))
	for _, attempt := range attempts {
		if seen[attempt.QuizID] {
			continue
		}
		seen[attempt.QuizID] = true
		latest = append(latest, attempt)
		quizIDs = append(quizIDs, attempt.QuizID)
	}

	quizzes := make(map[uint]models.Quiz, len(quizIDs))
	if len(quizIDs) > 0 {
		var rows []models.Quiz
		if err := database.DB.Where("id IN ?", quizIDs).Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch quizzes: %w", err)
		}
		for _, quiz := range rows {
			quizzes[quiz.ID] = quiz
		}
	}

	result := make([]InProgressQuiz, 0, len(latest))
	for _, attempt := range latest {
		quiz := quizzes[attempt.QuizID]
		result = append(result, InProgressQuiz{
			QuizID:        attempt.QuizID,
			Title:         quiz.Title,
			CategoryID:    quiz.QuizCategoryID,
			ChallengeType: quiz.ChallengeTypeID,
			CurrentStep:   attempt.CurrentStep,
			Status:        attempt.Status,
			TimeRemaining: attempt.TimeRemaining,
		})
	}
	return result, nil
}
