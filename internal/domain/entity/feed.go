package entity

import (
	"time"
)

// MaxRecentComments — сколько последних комментариев включается в элемент ленты
const MaxRecentComments = 2

// FeedComment представляет комментарий вместе с профилем автора.
// Автор может отсутствовать, если профиль еще не создан.
type FeedComment struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Author    *Profile  `json:"author"`
}

// FeedEntry представляет пост, обогащенный счетчиками и состоянием
// относительно смотрящего пользователя. Вычисляется на каждый запрос
// и никогда не сохраняется и не кешируется.
type FeedEntry struct {
	Post           Post          `json:"post"`
	Author         *Profile      `json:"author"`
	LikeCount      int64         `json:"like_count"`
	CommentCount   int64         `json:"comment_count"`
	ViewerHasLiked bool          `json:"viewer_has_liked"`
	RecentComments []FeedComment `json:"recent_comments"`
}
