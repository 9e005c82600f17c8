package models

import "time"

// Admin levels, lower is more privileged
const (
	AdminLevelSuperAdmin = 0
	AdminLevelAdmin      = 1
	AdminLevelUser       = 2
)

// User represents a registered user of the quiz platform
type User struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Username     string       `gorm:"type:varchar(50);unique;not null" json:"username"`
	Email        string       `gorm:"type:varchar(255);unique;not null" json:"email"`
	PasswordHash string       `gorm:"type:varchar(255);not null" json:"-"`
	UniqueInfo   string       `gorm:"type:varchar(255);not null" json:"unique_info"`
	AdminLevel   int          `gorm:"not null;default:2" json:"admin_level"`
	TotalPoints  int          `gorm:"not null;default:0" json:"total_points"`
	RankID       *uint        `gorm:"column:rank_id" json:"rank_id"`
	Rank         *UserRanking `gorm:"foreignKey:RankID" json:"rank,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// IsAdmin reports whether the user may access admin screens
func (u *User) IsAdmin() bool {
	return u.AdminLevel <= AdminLevelAdmin
}

// IsSuperAdmin reports whether the user may manage roles and delete accounts
func (u *User) IsSuperAdmin() bool {
	return u.AdminLevel == AdminLevelSuperAdmin
}
