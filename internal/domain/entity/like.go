package entity

import (
	"time"
)

// Like представляет отметку "нравится" — пару (пост, пользователь).
// Пара уникальна: составной первичный ключ исключает дубликаты на уровне БД.
type Like struct {
	PostID    uint      `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Like) TableName() string {
	return "post_likes"
}
