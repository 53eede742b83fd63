package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/skillgram-api/internal/domain/entity"
)

// CommentRepo реализует repository.CommentRepository
type CommentRepo struct {
	db *gorm.DB
}

// NewCommentRepo создает новый репозиторий комментариев
func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db: db}
}

// Create создает новый комментарий
func (r *CommentRepo) Create(comment *entity.Comment) error {
	return r.db.Create(comment).Error
}

// CountsByPostIDs возвращает счетчики комментариев, сгруппированные по постам.
// Посты без комментариев строк не дают.
func (r *CommentRepo) CountsByPostIDs(postIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64)
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []countRow
	err := r.db.Model(&entity.Comment{}).
		Select("post_id, count(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}

// GetByPostIDs возвращает комментарии набора постов, новые первыми
func (r *CommentRepo) GetByPostIDs(postIDs []uint) ([]entity.Comment, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var comments []entity.Comment
	err := r.db.Where("post_id IN ?", postIDs).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}
