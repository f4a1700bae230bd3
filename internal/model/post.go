package model

import (
	"time"
)

// Post 旅行帖子。引擎侧只读，写入由上游 CRUD 服务负责
type Post struct {
	ID          uint64    `gorm:"primaryKey"`
	UserID      uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Title       string    `gorm:"type:varchar(255)" json:"title"`
	Content     string    `gorm:"not null" json:"content"`
	Description string    `gorm:"type:varchar(512)" json:"description"`
	Image       string    `gorm:"type:varchar(512)" json:"image"`
	Destination string    `gorm:"type:varchar(255);index:idx_destination" json:"destination"`
	Likes       int       `gorm:"not null;default:0" json:"likes"`
	Comments    int       `gorm:"not null;default:0" json:"comments"`
	Status      int8      `gorm:"not null;default:0" json:"status"` // 0:审核中, 1:已发布, 2:拒绝
	IsDeleted   bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
