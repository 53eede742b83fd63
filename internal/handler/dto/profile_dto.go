package dto

import (
	"time"

	"github.com/yourusername/skillgram-api/internal/domain/entity"
	"github.com/yourusername/skillgram-api/internal/service"
)

// ProfileResponse представляет профиль пользователя
type ProfileResponse struct {
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProfilePageResponse представляет страницу профиля со статистикой
type ProfilePageResponse struct {
	Profile           *ProfileResponse    `json:"profile"`
	Posts             []FeedEntryResponse `json:"posts"`
	PostCount         int                 `json:"post_count"`
	LikeCount         int64               `json:"like_count"`
	ViewerOwnsProfile bool                `json:"viewer_owns_profile"`
}

// UserResponse представляет пользователя в ответах аутентификации
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthResponse представляет результат регистрации или входа
type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

// NewProfileResponse создает DTO профиля
func NewProfileResponse(p *entity.Profile) *ProfileResponse {
	return &ProfileResponse{
		Username:    p.Username,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		AvatarURL:   p.AvatarURL,
		CreatedAt:   p.CreatedAt,
	}
}

// NewProfilePageResponse создает DTO страницы профиля
func NewProfilePageResponse(page *service.ProfilePage) *ProfilePageResponse {
	posts := make([]FeedEntryResponse, len(page.Posts))
	for i := range page.Posts {
		posts[i] = NewFeedEntryResponse(&page.Posts[i])
	}
	return &ProfilePageResponse{
		Profile:           NewProfileResponse(page.Profile),
		Posts:             posts,
		PostCount:         page.PostCount,
		LikeCount:         page.LikeCount,
		ViewerOwnsProfile: page.ViewerOwnsProfile,
	}
}

// NewUserResponse создает DTO пользователя
func NewUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// NewAuthResponse создает DTO результата аутентификации
func NewAuthResponse(result *service.AuthResult) *AuthResponse {
	return &AuthResponse{
		User:  NewUserResponse(result.User),
		Token: result.Token,
	}
}
