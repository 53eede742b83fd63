package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/skillgram-api/internal/handler/dto"
	"github.com/yourusername/skillgram-api/internal/service"
)

// ProfileHandler обрабатывает запросы профилей
type ProfileHandler struct {
	profileService *service.ProfileService
	feedService    *service.FeedService
}

// NewProfileHandler создает новый обработчик профилей
func NewProfileHandler(profileService *service.ProfileService, feedService *service.FeedService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		feedService:    feedService,
	}
}

// GetMyProfile возвращает профиль текущего пользователя,
// создавая его при первом обращении
// GET /api/profile
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	profile, err := h.profileService.EnsureProfile(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProfileResponse(profile))
}

// UpdateProfileRequest представляет запрос на обновление профиля
type UpdateProfileRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=30"`
	DisplayName string `json:"display_name" binding:"omitempty,max=100"`
	Bio         string `json:"bio" binding:"omitempty,max=500"`
}

// UpdateProfile обновляет профиль текущего пользователя
// PUT /api/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.UpdateProfile(userID, service.UpdateProfileInput{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProfileResponse(profile))
}

// GetUserProfile возвращает страницу профиля по username с постами
// и статистикой
// GET /api/users/:username
func (h *ProfileHandler) GetUserProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	username := c.Param("username")

	page, err := h.feedService.GetProfilePage(username, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProfilePageResponse(page))
}
