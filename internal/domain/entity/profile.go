package entity

import (
	"time"
)

// Profile представляет публичный профиль пользователя в соцсети
type Profile struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Username    string    `gorm:"size:30;not null;uniqueIndex" json:"username"`
	DisplayName string    `gorm:"size:100;not null;default:''" json:"display_name"`
	Bio         string    `gorm:"size:500;not null;default:''" json:"bio"`
	AvatarURL   string    `gorm:"type:text;not null;default:''" json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Profile) TableName() string {
	return "profiles"
}
