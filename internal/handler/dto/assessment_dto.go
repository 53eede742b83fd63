package dto

import (
	"time"

	"github.com/yourusername/skillgram-api/internal/domain/entity"
	"github.com/yourusername/skillgram-api/internal/handler/helper"
)

// AssessmentResponse представляет тест в формате для ответа клиенту
type AssessmentResponse struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Category       string    `json:"category"`
	DurationMin    int       `json:"duration_min"`
	TotalQuestions int       `json:"total_questions"`
	CreatedAt      time.Time `json:"created_at"`
}

// QuestionResponse представляет вопрос для прохождения теста.
// Правильный вариант намеренно отсутствует.
type QuestionResponse struct {
	ID       uint     `json:"id"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Position int      `json:"position"`
}

// AssessmentDetailResponse представляет тест вместе с вопросами
type AssessmentDetailResponse struct {
	Assessment *AssessmentResponse `json:"assessment"`
	Questions  []QuestionResponse  `json:"questions"`
}

// AttemptResponse представляет завершенную попытку
type AttemptResponse struct {
	ID             uint      `json:"id"`
	AssessmentID   uint      `json:"assessment_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     int       `json:"percentage"`
	Grade          string    `json:"grade"`
	CompletedAt    time.Time `json:"completed_at"`
}

// AnswerRecordResponse представляет запись ответа в составе результата
type AnswerRecordResponse struct {
	QuestionID     uint `json:"question_id"`
	SelectedOption int  `json:"selected_option"`
	IsCorrect      bool `json:"is_correct"`
}

// AttemptResultResponse представляет результат попытки с разбором ответов
type AttemptResultResponse struct {
	Attempt *AttemptResponse       `json:"attempt"`
	Answers []AnswerRecordResponse `json:"answers"`
}

// PaginatedAttemptsResponse представляет пагинированную историю попыток
type PaginatedAttemptsResponse struct {
	Attempts []AttemptResponse `json:"attempts"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PerPage  int               `json:"per_page"`
}

// NewAssessmentResponse создает DTO для теста
func NewAssessmentResponse(a *entity.Assessment) *AssessmentResponse {
	return &AssessmentResponse{
		ID:             a.ID,
		Title:          a.Title,
		Description:    a.Description,
		Category:       a.Category,
		DurationMin:    a.DurationMin,
		TotalQuestions: a.TotalQuestions,
		CreatedAt:      a.CreatedAt,
	}
}

// NewQuestionResponse создает DTO для вопроса без правильного варианта
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	return QuestionResponse{
		ID:       q.ID,
		Text:     q.Text,
		Options:  q.Options(),
		Position: q.Position,
	}
}

// NewAttemptResponse создает DTO для попытки с производными полями
func NewAttemptResponse(a *entity.Attempt) AttemptResponse {
	percentage := helper.Percentage(a.Score, a.TotalQuestions)
	return AttemptResponse{
		ID:             a.ID,
		AssessmentID:   a.AssessmentID,
		Score:          a.Score,
		TotalQuestions: a.TotalQuestions,
		Percentage:     percentage,
		Grade:          helper.Grade(percentage),
		CompletedAt:    a.CompletedAt,
	}
}

// NewAttemptResultResponse создает DTO результата попытки
func NewAttemptResultResponse(attempt *entity.Attempt, records []entity.AnswerRecord) *AttemptResultResponse {
	attemptDTO := NewAttemptResponse(attempt)
	answers := make([]AnswerRecordResponse, len(records))
	for i, r := range records {
		answers[i] = AnswerRecordResponse{
			QuestionID:     r.QuestionID,
			SelectedOption: r.SelectedOption,
			IsCorrect:      r.IsCorrect,
		}
	}
	return &AttemptResultResponse{
		Attempt: &attemptDTO,
		Answers: answers,
	}
}
