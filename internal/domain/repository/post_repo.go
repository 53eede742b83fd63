package repository

import (
	"github.com/yourusername/skillgram-api/internal/domain/entity"
)

// PostRepository определяет методы для работы с постами.
// Выборки возвращают посты в порядке created_at DESC — лента опирается
// на этот контракт сортировки.
type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id uint) (*entity.Post, error)
	GetLatest(limit int) ([]entity.Post, error)
	GetByUserID(userID uint) ([]entity.Post, error)
}

// LikeRepository определяет методы для работы с отметками "нравится"
type LikeRepository interface {
	Exists(postID, userID uint) (bool, error)
	// InsertIgnoreDuplicate вставляет пару (пост, пользователь); повторная
	// вставка при гонке — no-op, а не ошибка.
	InsertIgnoreDuplicate(like *entity.Like) error
	Delete(postID, userID uint) error
	// CountByPost возвращает свежий итоговый счетчик для поста
	CountByPost(postID uint) (int64, error)
	// CountsByPostIDs возвращает сгруппированные счетчики; посты без лайков
	// в результате отсутствуют.
	CountsByPostIDs(postIDs []uint) (map[uint]int64, error)
	GetUserLikedPostIDs(userID uint, postIDs []uint) ([]uint, error)
}

// CommentRepository определяет методы для работы с комментариями
type CommentRepository interface {
	Create(comment *entity.Comment) error
	// CountsByPostIDs возвращает сгруппированные счетчики; посты без
	// комментариев в результате отсутствуют.
	CountsByPostIDs(postIDs []uint) (map[uint]int64, error)
	// GetByPostIDs возвращает комментарии постов в порядке created_at DESC
	GetByPostIDs(postIDs []uint) ([]entity.Comment, error)
}
