package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/skillgram-api/internal/handler/dto"
	"github.com/yourusername/skillgram-api/internal/service"
)

// PostHandler обрабатывает запросы ленты, постов, лайков и комментариев
type PostHandler struct {
	feedService *service.FeedService
}

// NewPostHandler создает новый обработчик постов
func NewPostHandler(feedService *service.FeedService) *PostHandler {
	return &PostHandler{feedService: feedService}
}

// GetFeed возвращает ленту для текущего пользователя
// GET /api/feed?limit=20
func (h *PostHandler) GetFeed(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	entries, err := h.feedService.GetFeed(userID, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewFeedResponse(entries))
}

// CreatePostRequest представляет запрос на создание поста
type CreatePostRequest struct {
	ImageURL   string `json:"image_url" binding:"required,url"`
	Caption    string `json:"caption" binding:"omitempty,max=2200"`
	Visibility string `json:"visibility" binding:"omitempty,oneof=public friends"`
}

// CreatePost создает новый пост
// POST /api/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.feedService.CreatePost(userID, req.ImageURL, req.Caption, req.Visibility)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ToggleLike переключает лайк текущего пользователя на посте
// POST /api/posts/:id/like
func (h *PostHandler) ToggleLike(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	postID := c.MustGet("postID").(uint)

	liked, count, err := h.feedService.ToggleLike(postID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LikeResponse{Liked: liked, LikeCount: count})
}

// AddCommentRequest представляет запрос на добавление комментария
type AddCommentRequest struct {
	Content string `json:"content" binding:"required,max=500"`
}

// AddComment добавляет комментарий к посту
// POST /api/posts/:id/comments
func (h *PostHandler) AddComment(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	postID := c.MustGet("postID").(uint)

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.feedService.AddComment(postID, userID, req.Content)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCommentResponse(comment))
}
