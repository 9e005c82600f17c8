package quizzes

// Constants for error messages
const (
	ErrQuizNotFound        = "Quiz not found"
	ErrQuizHasResults      = "Cannot delete quiz with existing results"
	ErrMissingQuizID       = "Missing quizId"
	ErrMissingCategoryID   = "Missing quizCategoryId"
	ErrInvalidStatus       = "Invalid attempt status"
	ErrAdminOnly           = "Admin access required"
	ErrSubmitFailed        = "Failed to record submission"
	ErrAttemptSaveFailed   = "Failed to save attempt"
	ErrAttemptFetchFailed  = "Failed to fetch attempt"
	ErrBookmarkSaveFailed  = "Failed to save bookmark"
	ErrBookmarkFetchFailed = "Failed to fetch bookmark"
	ErrQuizFetchFailed     = "Failed to fetch quizzes"
	ErrQuizCreateFailed    = "Failed to create quiz"
	ErrQuizUpdateFailed    = "Failed to update quiz"
	ErrQuizDeleteFailed    = "Failed to delete quiz"
)

// SubmitRequest model for answer submission
type SubmitRequest struct {
	QuizID    uint  `json:"quizId" binding:"required"`
	IsCorrect *bool `json:"isCorrect" binding:"required"`
}

// AttemptRequest model for saving resumable attempt state
type AttemptRequest struct {
	QuizID        uint   `json:"quizId" binding:"required"`
	CurrentStep   int    `json:"currentStep"`
	Status        string `json:"status" binding:"required"`
	TimeRemaining int    `json:"timeRemaining"`
}

// AttemptResponse is the resumable state returned to the client
type AttemptResponse struct {
	CurrentStep   int    `json:"currentStep"`
	TimeRemaining int    `json:"timeRemaining"`
	Status        string `json:"status"`
}

// BookmarkRequest model for saving the category resume pointer
type BookmarkRequest struct {
	QuizCategoryID    uint `json:"quizCategoryId" binding:"required"`
	LastQuizID        uint `json:"lastQuizId" binding:"required"`
	LastQuestionIndex int  `json:"lastQuestionIndex"`
}

// BookmarkResponse is the category resume pointer
type BookmarkResponse struct {
	LastQuizID        *uint `json:"lastQuizId"`
	LastQuestionIndex *int  `json:"lastQuestionIndex"`
}

// ResumeResponse is the single most recent in-progress attempt
type ResumeResponse struct {
	QuizID     uint   `json:"quizId"`
	Title      string `json:"title"`
	CategoryID uint   `json:"categoryId"`
	Status     string `json:"status"`
}

// QuizRequest model for creating or updating a quiz
type QuizRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	Points          int    `json:"points" binding:"required"`
	Answer          string `json:"answer" binding:"required"`
	Explanation     string `json:"explanation"`
	Difficulty      string `json:"difficulty"`
	TimeLimit       *int   `json:"timeLimit"`
	Options         any    `json:"options"`
	QuizCategoryID  uint   `json:"quizCategoryId" binding:"required"`
	ChallengeTypeID uint   `json:"challengeTypeId" binding:"required"`
}

// QuizListItem is a quiz row joined with category and challenge type names
type QuizListItem struct {
	ID                uint   `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	Points            int    `json:"points"`
	Difficulty        string `json:"difficulty"`
	TimeLimit         *int   `json:"time_limit"`
	QuizCategoryID    uint   `json:"quiz_category_id"`
	CategoryName      string `json:"category_name"`
	ChallengeTypeID   uint   `json:"challenge_type_id"`
	ChallengeTypeName string `json:"challenge_type_name"`
}
