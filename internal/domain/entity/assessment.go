package entity

import (
	"time"
)

// Assessment представляет тест с ограничением по времени
type Assessment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"size:200;not null" json:"title"`
	Description    string    `gorm:"size:1000;not null" json:"description"`
	Category       string    `gorm:"size:50;not null;index" json:"category"` // например, "verbal", "numerical"
	DurationMin    int       `gorm:"not null" json:"duration_min"`
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Assessment) TableName() string {
	return "assessments"
}
