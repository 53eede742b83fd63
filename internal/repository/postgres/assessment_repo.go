package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/skillgram-api/internal/domain/entity"
	apperrors "github.com/yourusername/skillgram-api/internal/pkg/errors"
)

// AssessmentRepo реализует repository.AssessmentRepository
type AssessmentRepo struct {
	db *gorm.DB
}

// NewAssessmentRepo создает новый репозиторий тестов
func NewAssessmentRepo(db *gorm.DB) *AssessmentRepo {
	return &AssessmentRepo{db: db}
}

// Create создает новый тест
func (r *AssessmentRepo) Create(assessment *entity.Assessment) error {
	return r.db.Create(assessment).Error
}

// GetByID возвращает тест по ID
func (r *AssessmentRepo) GetByID(id uint) (*entity.Assessment, error) {
	var assessment entity.Assessment
	err := r.db.First(&assessment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &assessment, nil
}

// List возвращает все тесты в порядке создания
func (r *AssessmentRepo) List() ([]entity.Assessment, error) {
	var assessments []entity.Assessment
	err := r.db.Order("id").Find(&assessments).Error
	if err != nil {
		return nil, err
	}
	return assessments, nil
}

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// CreateBatch создает пакет вопросов одной транзакцией
func (r *QuestionRepo) CreateBatch(questions []entity.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	})
}

// GetByAssessmentID возвращает все вопросы теста в порядке позиций
func (r *QuestionRepo) GetByAssessmentID(assessmentID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("assessment_id = ?", assessmentID).Order("position").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
