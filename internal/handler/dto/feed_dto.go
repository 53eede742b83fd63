package dto

import (
	"time"

	"github.com/yourusername/skillgram-api/internal/domain/entity"
)

// AuthorResponse представляет автора поста или комментария
type AuthorResponse struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// CommentResponse представляет комментарий в ленте
type CommentResponse struct {
	ID        uint            `json:"id"`
	PostID    uint            `json:"post_id"`
	Content   string          `json:"content"`
	Author    *AuthorResponse `json:"author,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// FeedEntryResponse представляет элемент ленты
type FeedEntryResponse struct {
	ID             uint              `json:"id"`
	ImageURL       string            `json:"image_url"`
	Caption        string            `json:"caption,omitempty"`
	Visibility     string            `json:"visibility"`
	Author         *AuthorResponse   `json:"author,omitempty"`
	LikeCount      int64             `json:"like_count"`
	CommentCount   int64             `json:"comment_count"`
	ViewerHasLiked bool              `json:"viewer_has_liked"`
	RecentComments []CommentResponse `json:"recent_comments"`
	CreatedAt      time.Time         `json:"created_at"`
}

// FeedResponse представляет ленту целиком
type FeedResponse struct {
	Entries []FeedEntryResponse `json:"entries"`
}

// LikeResponse представляет результат переключения лайка
type LikeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// NewAuthorResponse создает DTO автора; nil при отсутствии профиля
func NewAuthorResponse(p *entity.Profile) *AuthorResponse {
	if p == nil {
		return nil
	}
	return &AuthorResponse{
		Username:    p.Username,
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarURL,
	}
}

// NewCommentResponse создает DTO комментария
func NewCommentResponse(c *entity.FeedComment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		Content:   c.Content,
		Author:    NewAuthorResponse(c.Author),
		CreatedAt: c.CreatedAt,
	}
}

// NewFeedEntryResponse создает DTO элемента ленты
func NewFeedEntryResponse(e *entity.FeedEntry) FeedEntryResponse {
	comments := make([]CommentResponse, len(e.RecentComments))
	for i := range e.RecentComments {
		comments[i] = NewCommentResponse(&e.RecentComments[i])
	}
	return FeedEntryResponse{
		ID:             e.Post.ID,
		ImageURL:       e.Post.ImageURL,
		Caption:        e.Post.Caption,
		Visibility:     e.Post.Visibility,
		Author:         NewAuthorResponse(e.Author),
		LikeCount:      e.LikeCount,
		CommentCount:   e.CommentCount,
		ViewerHasLiked: e.ViewerHasLiked,
		RecentComments: comments,
		CreatedAt:      e.Post.CreatedAt,
	}
}

// NewFeedResponse создает DTO ленты
func NewFeedResponse(entries []entity.FeedEntry) *FeedResponse {
	dtos := make([]FeedEntryResponse, len(entries))
	for i := range entries {
		dtos[i] = NewFeedEntryResponse(&entries[i])
	}
	return &FeedResponse{Entries: dtos}
}
