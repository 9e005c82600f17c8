package services

import (
	"errors"
	"testing"

	"zen-api/database"
	"zen-api/models"
)

func TestSaveAttemptCreatesInProgress(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	category := createTestCategory(t, "HTML")
	quiz := createTestQuiz(t, category.ID, 10)

	if err := SaveAttempt(user.ID, quiz.ID, 2, models.AttemptInProgress, 240); err != nil {
		t.Fatalf("SaveAttempt: %v", err)
	}

	attempt, found, err := GetAttempt(user.ID, quiz.ID)
	if err != nil || !found {
		t.Fatalf("GetAttempt = (%v, %v), want found", found, err)
	}
	if attempt.CurrentStep != 2 || attempt.TimeRemaining != 240 {
		t.Errorf("attempt = step %d / %ds, want step 2 / 240s", attempt.CurrentStep, attempt.TimeRemaining)
	}
	if attempt.Status != models.AttemptInProgress {
		t.Errorf("Status = %q, want IN_PROGRESS", attempt.Status)
	}
}

func TestSaveAttemptUpdatesInPlace(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "bob")
	category := createTestCategory(t, "CSS")
	quiz := createTestQuiz(t, category.ID, 10)

	if err := SaveAttempt(user.ID, quiz.ID, 1, models.AttemptInProgress, 290); err != nil {
		t.Fatalf("SaveAttempt: %v", err)
	}
	if err := SaveAttempt(user.ID, quiz.ID, 3, models.AttemptInProgress, 180); err != nil {
		t.Fatalf("SaveAttempt: %v", err)
	}

	var count int64
	database.DB.Model(&models.QuizAttempt{}).
		Where("user_id = ? AND quiz_id = ?", user.ID, quiz.ID).
		Count(&count)
	if count != 1 {
		t.Fatalf("attempt rows = %d, want 1", count)
	}

	attempt, _, err := GetAttempt(user.ID, quiz.ID)
	if err != nil {
		t.Fatalf("GetAttempt: %v", err)
	}
	if attempt.CurrentStep != 3 || attempt.TimeRemaining != 180 {
		t.Errorf("attempt = step %d / %ds, want step 3 / 180s", attempt.CurrentStep, attempt.TimeRemaining)
	}
}

func TestSaveAttemptCompletesInPlace(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "carol")
	category := createTestCategory(t, "JS")
	quiz := createTestQuiz(t, category.ID, 10)

	if err := SaveAttempt(user.ID, quiz.ID, 4, models.AttemptInProgress, 60); err != nil {
		t.Fatalf("SaveAttempt: %v", err)
	}
	if err := SaveAttempt(user.ID, quiz.ID, 5, models.AttemptCompleted, 30); err != nil {
		t.Fatalf("SaveAttempt: %v", err)
	}

	// the IN_PROGRESS row was transitioned, not duplicated
	var count int64
	database.DB.Model(&models.QuizAttempt{}).
		Where("user_id = ? AND quiz_id = ?", user.ID, quiz.ID).
		Count(&count)
	if count != 1 {
		t.Fatalf("attempt rows = %d, want 1", count)
	}

	var attempt models.QuizAttempt
	database.DB.Where("user_id = ? AND quiz_id = ?", user.ID, quiz.ID).First(&attempt)
	if attempt.Status != models.AttemptCompleted {
		t.Errorf("Status = %q, want COMPLETED", attempt.Status)
	}

	// a new cycle may start once no IN_PROGRESS row remains
	if err := SaveAttempt(user.ID, quiz.ID, 0, models.AttemptInProgress, 300); err != nil {
		t.Fatalf("SaveAttempt new cycle: %v", err)
	}
	database.DB.Model(&models.QuizAttempt{}).
		Where("user_id = ? AND quiz_id = ?", user.ID, quiz.ID).
		Count(&count)
	if count != 2 {
		t.Errorf("attempt rows = %d after new cycle, want 2", count)
	}
}

func TestSaveAttemptSecondCompletionConflicts(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "dave")
	category := createTestCategory(t, "HTML")
	quiz := createTestQuiz(t, category.ID, 10)

	if err := SaveAttempt(user.ID, quiz.ID, 5, models.AttemptCompleted, 0); err != nil {
		t.Fatalf("SaveAttempt first completion: %v", err)
	}
	if err := SaveAttempt(user.ID, quiz.ID, 2, models.AttemptInProgress, 200); err != nil {
		t.Fatalf("SaveAttempt new cycle: %v", err)
	}

	err := SaveAttempt(user.ID, quiz.ID, 5, models.AttemptCompleted, 0)
	if !errors.Is(err, ErrAttemptConflict) {
		t.Fatalf("SaveAttempt second completion = %v, want ErrAttemptConflict", err)
	}
}

func TestSaveAttemptRepeatedTerminalStatusConflicts(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "judy2")
	category := createTestCategory(t, "JS")
	quiz := createTestQuiz(t, category.ID, 10)

	if err := SaveAttempt(user.ID, quiz.ID, 5, models.AttemptCompleted, 0); err != nil {
		t.Fatalf("SaveAttempt first completion: %v", err)
	}

	// with no IN_PROGRESS row left, a repeated COMPLETED save has nowhere to
	// land; it must be refused, not reported as a success
	err := SaveAttempt(user.ID, quiz.ID, 9, models.AttemptCompleted, 111)
	if !errors.Is(err, ErrAttemptConflict) {
		t.Fatalf("SaveAttempt repeat = %v, want ErrAttemptConflict", err)
	}

	var attempt models.QuizAttempt
	if err := database.DB.
		Where("user_id = ? AND quiz_id = ? AND status = ?", user.ID, quiz.ID, models.AttemptCompleted).
		First(&attempt).Error; err != nil {
		t.Fatalf("load attempt: %v", err)
	}
	if attempt.CurrentStep != 5 || attempt.TimeRemaining != 0 {
		t.Errorf("attempt = step %d / %ds, want the original step 5 / 0s", attempt.CurrentStep, attempt.TimeRemaining)
	}
}

func TestSaveAttemptAtMostOneInProgress(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "erin")
	category := createTestCategory(t, "CSS")
	quiz := createTestQuiz(t, category.ID, 10)

	for i := 0; i < 4; i++ {
		if err := SaveAttempt(user.ID, quiz.ID, i, models.AttemptInProgress, 300-i); err != nil {
			t.Fatalf("SaveAttempt #%d: %v", i+1, err)
		}
	}

	var count int64
	database.DB.Model(&models.QuizAttempt{}).
		Where("user_id = ? AND quiz_id = ? AND status = ?", user.ID, quiz.ID, models.AttemptInProgress).
		Count(&count)
	if count != 1 {
		t.Errorf("IN_PROGRESS rows = %d, want 1", count)
	}
}

func TestGetAttemptAbsent(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "frank")

	_, found, err := GetAttempt(user.ID, 1)
	if err != nil {
		t.Fatalf("GetAttempt: %v", err)
	}
	if found {
		t.Error("GetAttempt found = true with no attempts, want false")
	}
}

func TestLatestInProgress(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "grace")
	category := createTestCategory(t, "JS")
	quizA := createTestQuiz(t, category.ID, 10)
	quizB := createTestQuiz(t, category.ID, 10)

	if err := SaveAttempt(user.ID, quizA.ID, 1, models.AttemptInProgress, 290); err != nil {
		t.Fatalf("SaveAttempt: %v", err)
	}
	if err := SaveAttempt(user.ID, quizB.ID, 2, models.AttemptInProgress, 280); err != nil {
		t.Fatalf("SaveAttempt: %v", err)
	}
	// touching quizA again makes it the most recently updated
	if err := SaveAttempt(user.ID, quizA.ID, 3, models.AttemptInProgress, 250); err != nil {
		t.Fatalf("SaveAttempt: %v", err)
	}

	attempt, found, err := LatestInProgress(user.ID)
	if err != nil || !found {
		t.Fatalf("LatestInProgress = (%v, %v), want found", found, err)
	}
	if attempt.QuizID != quizA.ID {
		t.Errorf("LatestInProgress quiz = %d, want %d", attempt.QuizID, quizA.ID)
	}

	// completed attempts are not resumable
	if err := SaveAttempt(user.ID, quizA.ID, 5, models.AttemptCompleted, 0); err != nil {
		t.Fatalf("SaveAttempt: %v", err)
	}
	attempt, found, err = LatestInProgress(user.ID)
	if err != nil || !found {
		t.Fatalf("LatestInProgress = (%v, %v), want found", found, err)
	}
	if attempt.QuizID != quizB.ID {
		t.Errorf("LatestInProgress quiz = %d after completion, want %d", attempt.QuizID, quizB.ID)
	}
}

func TestListInProgress(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "heidi")
	other := createTestUser(t, "ivan")
	category := createTestCategory(t, "HTML")
	quizA := createTestQuiz(t, category.ID, 10)
	quizB := createTestQuiz(t, category.ID, 10)

	if err := SaveAttempt(user.ID, quizA.ID, 1, models.AttemptInProgress, 290); err != nil {
		t.Fatalf("SaveAttempt: %v", err)
	}
	if err := SaveAttempt(user.ID, quizB.ID, 2, models.AttemptInProgress, 280); err != nil {
		t.Fatalf("SaveAttempt: %v", err)
	}
	if err := SaveAttempt(other.ID, quizA.ID, 1, models.AttemptInProgress, 300); err != nil {
		t.Fatalf("SaveAttempt: %v", err)
	}

	list, err := ListInProgress(user.ID)
	if err != nil {
		t.Fatalf("ListInProgress: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("ListInProgress len = %d, want 2", len(list))
	}
	for _, item := range list {
		if item.Status != models.AttemptInProgress {
			t.Errorf("item status = %q, want IN_PROGRESS", item.Status)
		}
		if item.Title == "" {
			t.Error("item title is empty")
		}
	}
}

func TestListInProgressEmpty(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "judy")

	list, err := ListInProgress(user.ID)
	if err != nil {
		t.Fatalf("ListInProgress: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("ListInProgress len = %d, want 0", len(list))
	}
}
