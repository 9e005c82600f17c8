package models

import "time"

// CommunityPost is a user review of the platform with a 1..5 star rating
type CommunityPost struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	UserID    uint              `gorm:"column:user_id;not null;index" json:"user_id"`
	Content   string            `gorm:"type:text;not null" json:"content"`
	Rating    int               `gorm:"not null" json:"rating"`
	CreatedAt time.Time         `json:"created_at"`
	User      *User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Likes     []*CommunityLike  `gorm:"foreignKey:PostID" json:"likes,omitempty"`
	Replies   []*CommunityReply `gorm:"foreignKey:PostID" json:"replies,omitempty"`
}

// CommunityLike is a like or dislike on a post, one per (post, user)
type CommunityLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"column:post_id;not null;uniqueIndex:idx_post_user" json:"post_id"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_post_user" json:"user_id"`
	IsLike    bool      `gorm:"column:is_like;not null" json:"is_like"`
	CreatedAt time.Time `json:"created_at"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// CommunityReply is a reply to a community post
type CommunityReply struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"column:post_id;not null;index" json:"post_id"`
	UserID    uint      `gorm:"column:user_id;not null" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
