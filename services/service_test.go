package services

import (
	"fmt"
	"testing"

	"zen-api/database"
	"zen-api/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points database.DB at a fresh in-memory store for one test
func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	database.DB = db
}

func createTestUser(t *testing.T, username string) models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		UniqueInfo:   "test",
		AdminLevel:   models.AdminLevelUser,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func createTestCategory(t *testing.T, name string) models.QuizCategory {
	t.Helper()
	category := models.QuizCategory{Name: name}
	if err := database.DB.Create(&category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return category
}

func createTestQuiz(t *testing.T, categoryID uint, points int) models.Quiz {
	t.Helper()
	challengeType := models.ChallengeType{Name: "Multiple Choice", QuizCategoryID: categoryID}
	if err := database.DB.Create(&challengeType).Error; err != nil {
		t.Fatalf("failed to create challenge type: %v", err)
	}
	quiz := models.Quiz{
		Title:           fmt.Sprintf("Quiz %d", points),
		Points:          points,
		Answer:          "42",
		Difficulty:      models.DifficultyMedium,
		QuizCategoryID:  categoryID,
		ChallengeTypeID: challengeType.ID,
	}
	if err := database.DB.Create(&quiz).Error; err != nil {
		t.Fatalf("failed to create quiz: %v", err)
	}
	return quiz
}
