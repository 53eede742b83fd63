package service

import (
	"fmt"
	"strings"

	"github.com/yourusername/skillgram-api/internal/domain/entity"
	"github.com/yourusername/skillgram-api/internal/domain/repository"
	apperrors "github.com/yourusername/skillgram-api/internal/pkg/errors"
)

const (
	// DefaultFeedLimit — размер ленты по умолчанию
	DefaultFeedLimit = 20
	// MaxFeedLimit — предельный размер ленты за один запрос
	MaxFeedLimit = 50
	// MaxCaptionLength — предельная длина подписи к посту
	MaxCaptionLength = 2200
)

// FeedService предоставляет методы для работы с лентой, лайками и комментариями
type FeedService struct {
	postRepo    repository.PostRepository
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
	profileRepo repository.ProfileRepository
}

// NewFeedService создает новый сервис ленты
func NewFeedService(
	postRepo repository.PostRepository,
	likeRepo repository.LikeRepository,
	commentRepo repository.CommentRepository,
	profileRepo repository.ProfileRepository,
) *FeedService {
	return &FeedService{
		postRepo:    postRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		profileRepo: profileRepo,
	}
}

// BuildFeed собирает элементы ленты из независимо выбранных отношений.
// Чистая функция: не ходит в БД, порядок постов сохраняется как есть.
//
//   - likeCounts/commentCounts — сгруппированные счетчики; отсутствие ключа
//     означает ноль (пост без лайков строку группировки не дает);
//   - viewerLikedPostIDs — посты из набора, лайкнутые смотрящим;
//   - comments — комментарии набора постов, новые первыми; в элемент попадают
//     максимум entity.MaxRecentComments штук на пост;
//   - authors — профили по user_id; автор может отсутствовать (nil).
func BuildFeed(
	posts []entity.Post,
	authors map[uint]*entity.Profile,
	likeCounts map[uint]int64,
	commentCounts map[uint]int64,
	viewerLikedPostIDs []uint,
	comments []entity.Comment,
) []entity.FeedEntry {
	viewerLiked := make(map[uint]bool, len(viewerLikedPostIDs))
	for _, postID := range viewerLikedPostIDs {
		viewerLiked[postID] = true
	}

	// Группируем комментарии по постам, сохраняя порядок выборки
	recentByPost := make(map[uint][]entity.FeedComment)
	for _, comment := range comments {
		collected := recentByPost[comment.PostID]
		if len(collected) >= entity.MaxRecentComments {
			continue
		}
		recentByPost[comment.PostID] = append(collected, entity.FeedComment{
			ID:        comment.ID,
			PostID:    comment.PostID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
			Author:    authors[comment.UserID],
		})
	}

	entries := make([]entity.FeedEntry, 0, len(posts))
	for _, post := range posts {
		recent := recentByPost[post.ID]
		if recent == nil {
			recent = []entity.FeedComment{}
		}
		entries = append(entries, entity.FeedEntry{
			Post:           post,
			Author:         authors[post.UserID],
			LikeCount:      likeCounts[post.ID],
			CommentCount:   commentCounts[post.ID],
			ViewerHasLiked: viewerLiked[post.ID],
			RecentComments: recent,
		})
	}

	return entries
}

// GetFeed возвращает ленту для смотрящего пользователя.
// Элементы пересобираются на каждый запрос и не кешируются.
func (s *FeedService) GetFeed(viewerID uint, limit int) ([]entity.FeedEntry, error) {
	if limit < 1 {
		limit = DefaultFeedLimit
	} else if limit > MaxFeedLimit {
		limit = MaxFeedLimit
	}

	posts, err := s.postRepo.GetLatest(limit)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить посты: %w", err)
	}

	return s.aggregate(posts, viewerID)
}

// GetUserPosts возвращает посты одного автора как элементы ленты
func (s *FeedService) GetUserPosts(authorID, viewerID uint) ([]entity.FeedEntry, error) {
	posts, err := s.postRepo.GetByUserID(authorID)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить посты пользователя: %w", err)
	}

	return s.aggregate(posts, viewerID)
}

// aggregate выбирает четыре отношения для набора постов и склеивает их
func (s *FeedService) aggregate(posts []entity.Post, viewerID uint) ([]entity.FeedEntry, error) {
	if len(posts) == 0 {
		return []entity.FeedEntry{}, nil
	}

	postIDs := make([]uint, len(posts))
	for i, post := range posts {
		postIDs[i] = post.ID
	}

	likeCounts, err := s.likeRepo.CountsByPostIDs(postIDs)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить счетчики лайков: %w", err)
	}

	commentCounts, err := s.commentRepo.CountsByPostIDs(postIDs)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить счетчики комментариев: %w", err)
	}

	viewerLikedIDs, err := s.likeRepo.GetUserLikedPostIDs(viewerID, postIDs)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить лайки смотрящего: %w", err)
	}

	comments, err := s.commentRepo.GetByPostIDs(postIDs)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить комментарии: %w", err)
	}

	authors, err := s.loadAuthors(posts, comments)
	if err != nil {
		return nil, err
	}

	return BuildFeed(posts, authors, likeCounts, commentCounts, viewerLikedIDs, comments), nil
}

// loadAuthors собирает профили авторов постов и комментариев
func (s *FeedService) loadAuthors(posts []entity.Post, comments []entity.Comment) (map[uint]*entity.Profile, error) {
	seen := make(map[uint]bool)
	var userIDs []uint
	for _, post := range posts {
		if !seen[post.UserID] {
			seen[post.UserID] = true
			userIDs = append(userIDs, post.UserID)
		}
	}
	for _, comment := range comments {
		if !seen[comment.UserID] {
			seen[comment.UserID] = true
			userIDs = append(userIDs, comment.UserID)
		}
	}

	profiles, err := s.profileRepo.GetByUserIDs(userIDs)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить профили авторов: %w", err)
	}

	authors := make(map[uint]*entity.Profile, len(profiles))
	for i := range profiles {
		authors[profiles[i].UserID] = &profiles[i]
	}
	return authors, nil
}

// ToggleLike переключает лайк пользователя на посте. Вставка идемпотентна
// к гонке повторных кликов, а счетчик пересчитывается заново после мутации —
// инкремент кешированного значения при конкурентных переключениях разъехался бы.
func (s *FeedService) ToggleLike(postID, userID uint) (bool, int64, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return false, 0, err
	}

	exists, err := s.likeRepo.Exists(postID, userID)
	if err != nil {
		return false, 0, fmt.Errorf("не удалось проверить лайк: %w", err)
	}

	if exists {
		if err := s.likeRepo.Delete(postID, userID); err != nil {
			return false, 0, fmt.Errorf("не удалось удалить лайк: %w", err)
		}
	} else {
		like := &entity.Like{PostID: postID, UserID: userID}
		if err := s.likeRepo.InsertIgnoreDuplicate(like); err != nil {
			return false, 0, fmt.Errorf("не удалось сохранить лайк: %w", err)
		}
	}

	count, err := s.likeRepo.CountByPost(postID)
	if err != nil {
		return false, 0, fmt.Errorf("не удалось посчитать лайки: %w", err)
	}

	return !exists, count, nil
}

// AddComment добавляет комментарий к посту и возвращает его вместе
// с профилем автора, чтобы клиенту не требовался второй запрос.
func (s *FeedService) AddComment(postID, userID uint, content string) (*entity.FeedComment, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: comment cannot be empty", apperrors.ErrValidation)
	}
	if len(trimmed) > entity.MaxCommentLength {
		return nil, fmt.Errorf("%w: comment must be at most %d characters", apperrors.ErrValidation, entity.MaxCommentLength)
	}

	if _, err := s.postRepo.GetByID(postID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: trimmed,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("не удалось сохранить комментарий: %w", err)
	}

	author, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		// Профиль может отсутствовать — комментарий уже сохранен, отдаем без автора
		author = nil
	}

	return &entity.FeedComment{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		Author:    author,
	}, nil
}

// CreatePost создает новый пост
func (s *FeedService) CreatePost(userID uint, imageURL, caption, visibility string) (*entity.Post, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return nil, fmt.Errorf("%w: image url is required", apperrors.ErrValidation)
	}

	caption = strings.TrimSpace(caption)
	if len(caption) > MaxCaptionLength {
		return nil, fmt.Errorf("%w: caption must be at most %d characters", apperrors.ErrValidation, MaxCaptionLength)
	}

	if visibility == "" {
		visibility = entity.PostVisibilityPublic
	}
	if !entity.IsValidVisibility(visibility) {
		return nil, fmt.Errorf("%w: invalid visibility '%s'", apperrors.ErrValidation, visibility)
	}

	post := &entity.Post{
		UserID:     userID,
		ImageURL:   imageURL,
		Caption:    caption,
		Visibility: visibility,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("не удалось сохранить пост: %w", err)
	}

	return post, nil
}

// ProfilePage содержит данные страницы профиля
type ProfilePage struct {
	Profile           *entity.Profile    `json:"profile"`
	Posts             []entity.FeedEntry `json:"posts"`
	PostCount         int                `json:"post_count"`
	LikeCount         int64              `json:"like_count"`
	ViewerOwnsProfile bool               `json:"viewer_owns_profile"`
}

// GetProfilePage возвращает профиль с постами и статистикой
func (s *FeedService) GetProfilePage(username string, viewerID uint) (*ProfilePage, error) {
	profile, err := s.profileRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}

	entries, err := s.GetUserPosts(profile.UserID, viewerID)
	if err != nil {
		return nil, err
	}

	var totalLikes int64
	for _, entry := range entries {
		totalLikes += entry.LikeCount
	}

	return &ProfilePage{
		Profile:           profile,
		Posts:             entries,
		PostCount:         len(entries),
		LikeCount:         totalLikes,
		ViewerOwnsProfile: profile.UserID == viewerID,
	}, nil
}
