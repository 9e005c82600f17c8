package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"zen-api/database"
	"zen-api/metrics"
	"zen-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubmitAnswer records one answer submission for a quiz. Every submission is
// appended to quiz_results; a correct answer worth points additionally
// increments the user's total and upserts the per-category progress row.
// The whole sequence runs in one transaction, the points increment is a SQL
// expression and the progress upsert is conflict-scoped on
// (user_id, quiz_category_id), so concurrent submissions cannot lose updates.
//
// completed_quizzes counts correct submissions, not distinct quizzes:
// re-answering the same quiz correctly keeps incrementing the counter and the
// percentage can pass 100. That matches what existing clients display, so it
// is kept as is.
func SubmitAnswer(userID uint, quizID uint, isCorrect bool) error {
	start := time.Now()
	defer metrics.RecordDBOperation("submit", "quiz_results", start)

	return database.DB.Transaction(func(tx *gorm.DB) error {
		var quiz models.Quiz
		if err := tx.First(&quiz, quizID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQuizNotFound
			}
			return fmt.Errorf("failed to fetch quiz: %w", err)
		}

		points := 0
		if isCorrect {
			points = quiz.Points
		}

		result := models.QuizResult{
			UserID:       userID,
			QuizID:       quizID,
			IsCorrect:    isCorrect,
			PointsEarned: points,
			AttemptDate:  time.Now(),
		}
		if err := tx.Create(&result).Error; err != nil {
			return fmt.Errorf("failed to record result: %w", err)
		}

		if !isCorrect || points <= 0 {
			return nil
		}

		res := tx.Model(&models.User{}).Where("id = ?", userID).
			UpdateColumn("total_points", gorm.Expr("total_points + ?", points))
		if res.Error != nil {
			return fmt.Errorf("failed to add points: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}

		return upsertProgress(tx, userID, quiz.QuizCategoryID)
	})
}

// upsertProgress bumps the (user, category) aggregate row, creating it on
// first submission. The increment runs inside the conflict clause so two
// racing submissions both land; the percentage is then recomputed from the
// incremented row within the same transaction.
func upsertProgress(tx *gorm.DB, userID uint, categoryID uint) error {
	var total int64
	if err := tx.Model(&models.Quiz{}).Where("quiz_category_id = ?", categoryID).Count(&total).Error; err != nil {
		return fmt.Errorf("failed to count quizzes: %w", err)
	}
	if total == 0 {
		total = 1
	}

	progress := models.UserProgress{
		UserID:               userID,
		QuizCategoryID:       categoryID,
		TotalQuizzes:         int(total),
		CompletedQuizzes:     1,
		CompletionPercentage: CompletionPercentage(1, int(total)),
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "quiz_category_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"completed_quizzes": gorm.Expr("user_progress.completed_quizzes + 1"),
			"total_quizzes":     int(total),
		}),
	}).Create(&progress).Error
	if err != nil {
		return fmt.Errorf("failed to upsert progress: %w", err)
	}

	var current models.UserProgress
	if err := tx.Where("user_id = ? AND quiz_category_id = ?", userID, categoryID).Take(&current).Error; err != nil {
		return fmt.Errorf("failed to reread progress: %w", err)
	}
	return tx.Model(&current).
		UpdateColumn("completion_percentage", CompletionPercentage(current.CompletedQuizzes, int(total))).Error
}

// CompletionPercentage is round(completed / total * 100)
func CompletionPercentage(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(completed) / float64(total) * 100)
}

// SaveBookmark overwrites the resume pointer on the (user, category) progress
// row, creating the row with only the bookmark fields when it does not exist
func SaveBookmark(userID uint, categoryID uint, lastQuizID uint, lastQuestionIndex int) error {
	progress := models.UserProgress{
		UserID:            userID,
		QuizCategoryID:    categoryID,
		LastQuizID:        &lastQuizID,
		LastQuestionIndex: &lastQuestionIndex,
	}
	return database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "quiz_category_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"last_quiz_id":        lastQuizID,
			"last_question_index": lastQuestionIndex,
		}),
	}).Create(&progress).Error
}

// GetBookmark returns the resume pointer for the category, or found=false when
// the user has no progress row there
func GetBookmark(userID uint, categoryID uint) (models.UserProgress, bool, error) {
	var progress models.UserProgress
	err := database.DB.Where("user_id = ? AND quiz_category_id = ?", userID, categoryID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return progress, false, nil
	}
	if err != nil {
		return progress, false, err
	}
	return progress, true, nil
}
