package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/skillgram-api/internal/domain/entity"
	apperrors "github.com/yourusername/skillgram-api/internal/pkg/errors"
)

// AttemptRepo реализует repository.AttemptRepository
type AttemptRepo struct {
	db *gorm.DB
}

// NewAttemptRepo создает новый репозиторий попыток
func NewAttemptRepo(db *gorm.DB) *AttemptRepo {
	return &AttemptRepo{db: db}
}

// CreateWithRecords сохраняет попытку вместе с ответами одной транзакцией.
// Либо записывается все, либо ничего.
func (r *AttemptRepo) CreateWithRecords(attempt *entity.Attempt, records []entity.AnswerRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		for i := range records {
			records[i].AttemptID = attempt.ID
		}
		return tx.Create(&records).Error
	})
}

// GetByID возвращает попытку по ID
func (r *AttemptRepo) GetByID(id uint) (*entity.Attempt, error) {
	var attempt entity.Attempt
	err := r.db.First(&attempt, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &attempt, nil
}

// GetRecords возвращает ответы попытки в порядке вопросов
func (r *AttemptRepo) GetRecords(attemptID uint) ([]entity.AnswerRecord, error) {
	var records []entity.AnswerRecord
	err := r.db.Where("attempt_id = ?", attemptID).Order("question_id").Find(&records).Error
	return records, err
}

// GetUserAttempts возвращает попытки пользователя с пагинацией, новые первыми
func (r *AttemptRepo) GetUserAttempts(userID uint, limit, offset int) ([]entity.Attempt, int64, error) {
	var attempts []entity.Attempt
	var total int64

	err := r.db.Model(&entity.Attempt{}).Where("user_id = ?", userID).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	err = r.db.Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&attempts).Error
	if err != nil {
		return nil, 0, err
	}

	return attempts, total, nil
}

// GetAssessmentAttempts возвращает ВСЕ попытки по тесту для экспорта
func (r *AttemptRepo) GetAssessmentAttempts(assessmentID uint) ([]entity.Attempt, error) {
	var attempts []entity.Attempt
	err := r.db.Where("assessment_id = ?", assessmentID).
		Order("score DESC, completed_at").
		Find(&attempts).Error
	return attempts, err
}
