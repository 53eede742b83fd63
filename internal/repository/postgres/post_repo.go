package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/skillgram-api/internal/domain/entity"
	apperrors "github.com/yourusername/skillgram-api/internal/pkg/errors"
)

// PostRepo реализует repository.PostRepository
type PostRepo struct {
	db *gorm.DB
}

// NewPostRepo создает новый репозиторий постов
func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db: db}
}

// Create создает новый пост
func (r *PostRepo) Create(post *entity.Post) error {
	return r.db.Create(post).Error
}

// GetByID возвращает пост по ID
func (r *PostRepo) GetByID(id uint) (*entity.Post, error) {
	var post entity.Post
	err := r.db.First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetLatest возвращает последние посты, новые первыми
func (r *PostRepo) GetLatest(limit int) ([]entity.Post, error) {
	var posts []entity.Post
	err := r.db.Order("created_at DESC").Limit(limit).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByUserID возвращает все посты пользователя, новые первыми
func (r *PostRepo) GetByUserID(userID uint) ([]entity.Post, error) {
	var posts []entity.Post
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
