package models

import "time"

// CodeSnippet is a saved playground experiment (HTML/CSS/JS editors)
type CodeSnippet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	HTMLCode  string    `gorm:"column:html_code;type:text" json:"html_code"`
	CSSCode   string    `gorm:"column:css_code;type:text" json:"css_code"`
	JSCode    string    `gorm:"column:js_code;type:text" json:"js_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
}
