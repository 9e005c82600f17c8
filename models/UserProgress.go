package models

// UserProgress is the per-(user, category) aggregate completion record.
// The (user_id, quiz_category_id) pair is unique. The last_quiz_id and
// last_question_index fields form the resume bookmark for the category.
type UserProgress struct {
	ID                   uint          `gorm:"primaryKey" json:"id"`
	UserID               uint          `gorm:"column:user_id;not null;uniqueIndex:idx_user_category" json:"user_id"`
	QuizCategoryID       uint          `gorm:"column:quiz_category_id;not null;uniqueIndex:idx_user_category" json:"quiz_category_id"`
	TotalQuizzes         int           `gorm:"not null;default:0" json:"total_quizzes"`
	CompletedQuizzes     int           `gorm:"not null;default:0" json:"completed_quizzes"`
	CompletionPercentage float64       `gorm:"not null;default:0" json:"completion_percentage"`
	LastQuizID           *uint         `gorm:"column:last_quiz_id" json:"last_quiz_id"`
	LastQuestionIndex    *int          `gorm:"column:last_question_index" json:"last_question_index"`
	User                 *User         `gorm:"foreignKey:UserID" json:"-"`
	QuizCategory         *QuizCategory `gorm:"foreignKey:QuizCategoryID" json:"quiz_category,omitempty"`
}

// TableName keeps the singular table name used by the schema
func (UserProgress) TableName() string {
	return "user_progress"
}
