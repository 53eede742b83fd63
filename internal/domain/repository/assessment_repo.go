package repository

import (
	"github.com/yourusername/skillgram-api/internal/domain/entity"
)

// AssessmentRepository определяет методы для работы с тестами
type AssessmentRepository interface {
	Create(assessment *entity.Assessment) error
	GetByID(id uint) (*entity.Assessment, error)
	List() ([]entity.Assessment, error)
}

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	CreateBatch(questions []entity.Question) error
	GetByAssessmentID(assessmentID uint) ([]entity.Question, error)
}
