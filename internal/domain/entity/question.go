package entity

import (
	"time"
)

// Question представляет вопрос теста с четырьмя вариантами ответа.
// Вопросы неизменяемы после создания и принадлежат одному тесту.
type Question struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AssessmentID  uint      `gorm:"not null;index" json:"assessment_id"`
	Text          string    `gorm:"size:1000;not null" json:"text"`
	Option1       string    `gorm:"size:500;not null" json:"option1"`
	Option2       string    `gorm:"size:500;not null" json:"option2"`
	Option3       string    `gorm:"size:500;not null" json:"option3"`
	Option4       string    `gorm:"size:500;not null" json:"option4"`
	CorrectOption int       `gorm:"not null" json:"-"` // 1, 2, 3 или 4. Скрыто от клиента
	Position      int       `gorm:"not null" json:"position"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsCorrect проверяет, является ли выбранный вариант правильным.
// Сравнение строгое, без частичного зачета.
func (q *Question) IsCorrect(selectedOption int) bool {
	return selectedOption == q.CorrectOption
}

// IsValidOption проверяет, что выбранный вариант лежит в диапазоне 1-4
func (q *Question) IsValidOption(selectedOption int) bool {
	return selectedOption >= 1 && selectedOption <= 4
}

// Options возвращает варианты ответа в порядке их номеров
func (q *Question) Options() []string {
	return []string{q.Option1, q.Option2, q.Option3, q.Option4}
}
