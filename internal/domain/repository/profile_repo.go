package repository

import (
	"github.com/yourusername/skillgram-api/internal/domain/entity"
)

// ProfileRepository определяет методы для работы с профилями
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByUserID(userID uint) (*entity.Profile, error)
	GetByUsername(username string) (*entity.Profile, error)
	GetByUserIDs(userIDs []uint) ([]entity.Profile, error)
	Update(profile *entity.Profile) error
}
