package models

import "time"

// Attempt statuses. At most one IN_PROGRESS row may exist per (user, quiz);
// the unique index on (user_id, quiz_id, status) backs that invariant.
const (
	AttemptInProgress = "IN_PROGRESS"
	AttemptCompleted  = "COMPLETED"
	AttemptAbandoned  = "ABANDONED"
)

// QuizAttempt is the resumable per-(user, quiz) progress record. A status
// transition updates the existing IN_PROGRESS row in place; a new attempt
// cycle starts with a fresh row once no IN_PROGRESS row remains.
type QuizAttempt struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"column:user_id;not null;uniqueIndex:idx_user_quiz_status" json:"user_id"`
	QuizID        uint      `gorm:"column:quiz_id;not null;uniqueIndex:idx_user_quiz_status" json:"quiz_id"`
	Status        string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_user_quiz_status" json:"status"`
	CurrentStep   int       `gorm:"column:current_step;not null;default:0" json:"current_step"`
	TimeRemaining int       `gorm:"column:time_remaining;not null;default:0" json:"time_remaining"`
	StartedAt     time.Time `gorm:"column:started_at;not null" json:"started_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
	User          *User     `gorm:"foreignKey:UserID" json:"-"`
	Quiz          *Quiz     `gorm:"foreignKey:QuizID" json:"-"`
}

// ValidAttemptStatus reports whether s is one of the known attempt statuses
func ValidAttemptStatus(s string) bool {
	return s == AttemptInProgress || s == AttemptCompleted || s == AttemptAbandoned
}
