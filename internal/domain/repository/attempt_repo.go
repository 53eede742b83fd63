package repository

import (
	"github.com/yourusername/skillgram-api/internal/domain/entity"
)

// AttemptRepository определяет методы для работы с попытками прохождения.
// Попытка и ее ответы создаются одной транзакцией: частичная запись недопустима.
type AttemptRepository interface {
	CreateWithRecords(attempt *entity.Attempt, records []entity.AnswerRecord) error
	GetByID(id uint) (*entity.Attempt, error)
	GetRecords(attemptID uint) ([]entity.AnswerRecord, error)
	GetUserAttempts(userID uint, limit, offset int) ([]entity.Attempt, int64, error)
	GetAssessmentAttempts(assessmentID uint) ([]entity.Attempt, error)
}
