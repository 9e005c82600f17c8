package models

// UserRanking represents a points tier (Beginner, Intermediate, ...)
type UserRanking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	RankName  string `gorm:"type:varchar(50);not null" json:"rank_name"`
	MinPoints int    `gorm:"not null" json:"min_points"`
	MaxPoints *int   `json:"max_points"`
}
