package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/skillgram-api/internal/domain/entity"
	apperrors "github.com/yourusername/skillgram-api/internal/pkg/errors"
)

// ProfileRepo реализует repository.ProfileRepository
type ProfileRepo struct {
	db *gorm.DB
}

// NewProfileRepo создает новый репозиторий профилей
func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Create создает новый профиль
func (r *ProfileRepo) Create(profile *entity.Profile) error {
	return r.db.Create(profile).Error
}

// GetByUserID возвращает профиль по ID пользователя
func (r *ProfileRepo) GetByUserID(userID uint) (*entity.Profile, error) {
	var profile entity.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// GetByUsername возвращает профиль по username
func (r *ProfileRepo) GetByUsername(username string) (*entity.Profile, error) {
	var profile entity.Profile
	err := r.db.Where("username = ?", username).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// GetByUserIDs возвращает профили для набора пользователей
func (r *ProfileRepo) GetByUserIDs(userIDs []uint) ([]entity.Profile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var profiles []entity.Profile
	err := r.db.Where("user_id IN ?", userIDs).Find(&profiles).Error
	return profiles, err
}

// Update сохраняет изменения профиля
func (r *ProfileRepo) Update(profile *entity.Profile) error {
	return r.db.Save(profile).Error
}
