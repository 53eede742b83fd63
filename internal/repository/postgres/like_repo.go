package postgres

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/skillgram-api/internal/domain/entity"
)

// LikeRepo реализует repository.LikeRepository
type LikeRepo struct {
	db *gorm.DB
}

// NewLikeRepo создает новый репозиторий лайков
func NewLikeRepo(db *gorm.DB) *LikeRepo {
	return &LikeRepo{db: db}
}

// Exists проверяет наличие пары (пост, пользователь)
func (r *LikeRepo) Exists(postID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertIgnoreDuplicate вставляет лайк. При гонке двух одинаковых вставок
// вторая молча пропускается (ON CONFLICT DO NOTHING), а не падает на
// нарушении составного первичного ключа.
func (r *LikeRepo) InsertIgnoreDuplicate(like *entity.Like) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
}

// Delete удаляет пару (пост, пользователь)
func (r *LikeRepo) Delete(postID, userID uint) error {
	return r.db.Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&entity.Like{}).Error
}

// CountByPost возвращает свежий счетчик лайков поста
func (r *LikeRepo) CountByPost(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// countRow используется для сканирования сгруппированных счетчиков
type countRow struct {
	PostID uint  `gorm:"column:post_id"`
	Count  int64 `gorm:"column:count"`
}

// CountsByPostIDs возвращает счетчики лайков, сгруппированные по постам.
// Посты без лайков строк не дают — нулевое умолчание обязан подставить вызывающий.
func (r *LikeRepo) CountsByPostIDs(postIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64)
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []countRow
	err := r.db.Model(&entity.Like{}).
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

// GetUserLikedPostIDs возвращает ID постов из набора, которые лайкнул пользователь
func (r *LikeRepo) GetUserLikedPostIDs(userID uint, postIDs []uint) ([]uint, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var likedIDs []uint
	err := r.db.Model(&entity.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &likedIDs).Error
	return likedIDs, err
}
