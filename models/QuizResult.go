package models

import "time"

// QuizResult is an append-only record of one answer submission.
// Rows are never updated or deleted except when the owning user is deleted.
type QuizResult struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	QuizID       uint      `gorm:"column:quiz_id;not null;index" json:"quiz_id"`
	IsCorrect    bool      `gorm:"not null" json:"is_correct"`
	PointsEarned int       `gorm:"not null" json:"points_earned"`
	AttemptDate  time.Time `gorm:"column:attempt_date;not null" json:"attempt_date"`
	User         *User     `gorm:"foreignKey:UserID" json:"-"`
	Quiz         *Quiz     `gorm:"foreignKey:QuizID" json:"-"`
}
