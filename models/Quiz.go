package models

// Difficulty levels for quizzes
const (
	DifficultyEasy   = "EASY"
	DifficultyMedium = "MEDIUM"
	DifficultyHard   = "HARD"
)

// Quiz represents a single quiz belonging to one category and one challenge type
type Quiz struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	ChallengeTypeID uint           `gorm:"column:challenge_type_id;not null" json:"challenge_type_id"`
	QuizCategoryID  uint           `gorm:"column:quiz_category_id;not null" json:"quiz_category_id"`
	Title           string         `gorm:"type:varchar(255);not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	Points          int            `gorm:"not null" json:"points"`
	Answer          string         `gorm:"type:text;not null" json:"answer"`
	Explanation     string         `gorm:"type:text" json:"explanation"`
	Difficulty      string         `gorm:"type:varchar(10);not null;default:MEDIUM" json:"difficulty"`
	TimeLimit       *int           `gorm:"column:time_limit" json:"time_limit"`
	Options         []byte         `gorm:"type:jsonb" json:"options"`
	ChallengeType   *ChallengeType `gorm:"foreignKey:ChallengeTypeID" json:"challenge_type,omitempty"`
	QuizCategory    *QuizCategory  `gorm:"foreignKey:QuizCategoryID" json:"quiz_category,omitempty"`
	Results         []*QuizResult  `gorm:"foreignKey:QuizID" json:"-"`
}

// ValidDifficulty reports whether d is one of the known difficulty levels
func ValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}
