package models

// QuizCategory is a named grouping of quizzes (HTML, CSS, JS, Advanced JS)
type QuizCategory struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	Name           string           `gorm:"type:varchar(100);not null" json:"name"`
	ChallengeTypes []*ChallengeType `gorm:"foreignKey:QuizCategoryID" json:"challenge_types,omitempty"`
	Quizzes        []*Quiz          `gorm:"foreignKey:QuizCategoryID" json:"quizzes,omitempty"`
}

// ChallengeType groups quizzes of the same interaction style within a category
type ChallengeType struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Name           string        `gorm:"type:varchar(100);not null" json:"name"`
	Description    string        `gorm:"type:varchar(255)" json:"description"`
	QuizCategoryID uint          `gorm:"column:quiz_category_id;not null" json:"quiz_category_id"`
	QuizCategory   *QuizCategory `gorm:"foreignKey:QuizCategoryID" json:"-"`
}
