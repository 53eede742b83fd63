package entity

import (
	"time"
)

// Видимость поста
const (
	PostVisibilityPublic  = "public"
	PostVisibilityFriends = "friends"
)

// Post представляет публикацию с изображением
type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	ImageURL   string    `gorm:"size:500;not null" json:"image_url"`
	Caption    string    `gorm:"size:2200;not null;default:''" json:"caption"`
	Visibility string    `gorm:"size:20;not null;default:'public'" json:"visibility"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Post) TableName() string {
	return "posts"
}

// IsValidVisibility проверяет значение видимости
func IsValidVisibility(v string) bool {
	return v == PostVisibilityPublic || v == PostVisibilityFriends
}
