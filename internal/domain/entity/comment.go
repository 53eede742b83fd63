package entity

import (
	"time"
)

// MaxCommentLength — предельная длина текста комментария
const MaxCommentLength = 500

// Comment представляет комментарий к посту. Комментарии только добавляются
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Content   string    `gorm:"size:500;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Comment) TableName() string {
	return "post_comments"
}
