package entity

import (
	"time"
)

// Attempt представляет одну зачтенную отправку ответов пользователя.
// Запись неизменяема после создания: повторное прохождение создает новый Attempt.
type Attempt struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	AssessmentID   uint      `gorm:"not null;index" json:"assessment_id"`
	Score          int       `gorm:"not null;default:0" json:"score"`
	TotalQuestions int       `gorm:"not null;default:0" json:"total_questions"`
	StartedAt      time.Time `gorm:"not null" json:"started_at"`
	CompletedAt    time.Time `gorm:"not null" json:"completed_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Attempt) TableName() string {
	return "attempts"
}
