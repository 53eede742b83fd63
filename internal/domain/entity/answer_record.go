package entity

import (
	"time"
)

// AnswerRecord представляет ответ пользователя на один вопрос в рамках попытки.
// Создается вместе с Attempt и никогда не изменяется. Для пропущенных вопросов
// запись не создается.
type AnswerRecord struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	AttemptID      uint      `gorm:"not null;index" json:"attempt_id"`
	QuestionID     uint      `gorm:"not null;index" json:"question_id"`
	SelectedOption int       `gorm:"not null" json:"selected_option"`
	IsCorrect      bool      `gorm:"not null" json:"is_correct"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (AnswerRecord) TableName() string {
	return "answer_records"
}
