package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/skillgram-api/internal/domain/entity"
	apperrors "github.com/yourusername/skillgram-api/internal/pkg/errors"
)

// ============================================================================
// Моки репозиториев соцсети
// ============================================================================

// MockPostRepository реализует repository.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *entity.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(id uint) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) GetLatest(limit int) ([]entity.Post, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Post), args.Error(1)
}

func (m *MockPostRepository) GetByUserID(userID uint) ([]entity.Post, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Post), args.Error(1)
}

// MockLikeRepository реализует repository.LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Exists(postID, userID uint) (bool, error) {
	args := m.Called(postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) InsertIgnoreDuplicate(like *entity.Like) error {
	args := m.Called(like)
	return args.Error(0)
}

func (m *MockLikeRepository) Delete(postID, userID uint) error {
	args := m.Called(postID, userID)
	return args.Error(0)
}

func (m *MockLikeRepository) CountByPost(postID uint) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) CountsByPostIDs(postIDs []uint) (map[uint]int64, error) {
	args := m.Called(postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]int64), args.Error(1)
}

func (m *MockLikeRepository) GetUserLikedPostIDs(userID uint, postIDs []uint) ([]uint, error) {
	args := m.Called(userID, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

// MockCommentRepository реализует repository.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *entity.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) CountsByPostIDs(postIDs []uint) (map[uint]int64, error) {
	args := m.Called(postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]int64), args.Error(1)
}

func (m *MockCommentRepository) GetByPostIDs(postIDs []uint) ([]entity.Comment, error) {
	args := m.Called(postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Comment), args.Error(1)
}

// MockProfileRepository реализует repository.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(profile *entity.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByUserID(userID uint) (*entity.Profile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByUsername(username string) (*entity.Profile, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByUserIDs(userIDs []uint) ([]entity.Profile, error) {
	args := m.Called(userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(profile *entity.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func newFeedService() (*FeedService, *MockPostRepository, *MockLikeRepository, *MockCommentRepository, *MockProfileRepository) {
	postRepo := new(MockPostRepository)
	likeRepo := new(MockLikeRepository)
	commentRepo := new(MockCommentRepository)
	profileRepo := new(MockProfileRepository)
	return NewFeedService(postRepo, likeRepo, commentRepo, profileRepo), postRepo, likeRepo, commentRepo, profileRepo
}

// ============================================================================
// BuildFeed — чистая агрегация
// ============================================================================

func TestBuildFeed_ZeroCountsWithoutGroupingRows(t *testing.T) {
	// Arrange: пост без лайков и комментариев — строк группировки нет вообще
	posts := []entity.Post{{ID: 1, UserID: 10}}

	// Act
	entries := BuildFeed(posts, nil, map[uint]int64{}, map[uint]int64{}, nil, nil)

	// Assert
	require.Len(t, entries, 1)
	assert.Equal(t, int64(0), entries[0].LikeCount)
	assert.Equal(t, int64(0), entries[0].CommentCount)
	assert.False(t, entries[0].ViewerHasLiked)
	assert.NotNil(t, entries[0].RecentComments, "recent_comments должен сериализоваться как [], а не null")
	assert.Empty(t, entries[0].RecentComments)
}

func TestBuildFeed_PreservesPostOrder(t *testing.T) {
	// Arrange: порядок базовой выборки — контракт репозитория (новые первыми)
	posts := []entity.Post{{ID: 3}, {ID: 1}, {ID: 2}}

	// Act
	entries := BuildFeed(posts, nil, nil, nil, nil, nil)

	// Assert
	require.Len(t, entries, 3)
	assert.Equal(t, uint(3), entries[0].Post.ID)
	assert.Equal(t, uint(1), entries[1].Post.ID)
	assert.Equal(t, uint(2), entries[2].Post.ID)
}

func TestBuildFeed_CountsAndViewerMembership(t *testing.T) {
	// Arrange
	posts := []entity.Post{{ID: 1, UserID: 10}, {ID: 2, UserID: 11}}
	likeCounts := map[uint]int64{1: 5}
	commentCounts := map[uint]int64{1: 3, 2: 1}
	viewerLiked := []uint{1}

	// Act
	entries := BuildFeed(posts, nil, likeCounts, commentCounts, viewerLiked, nil)

	// Assert
	require.Len(t, entries, 2)
	assert.Equal(t, int64(5), entries[0].LikeCount)
	assert.True(t, entries[0].ViewerHasLiked)
	assert.Equal(t, int64(0), entries[1].LikeCount, "Пост без строки группировки получает ноль")
	assert.False(t, entries[1].ViewerHasLiked)
	assert.Equal(t, int64(1), entries[1].CommentCount)
}

func TestBuildFeed_RecentCommentsCappedAtTwo(t *testing.T) {
	// Arrange: четыре комментария к одному посту, новые первыми
	now := time.Now()
	posts := []entity.Post{{ID: 1, UserID: 10}}
	comments := []entity.Comment{
		{ID: 104, PostID: 1, UserID: 20, Content: "newest", CreatedAt: now},
		{ID: 103, PostID: 1, UserID: 21, Content: "second", CreatedAt: now.Add(-time.Minute)},
		{ID: 102, PostID: 1, UserID: 20, Content: "third", CreatedAt: now.Add(-2 * time.Minute)},
		{ID: 101, PostID: 1, UserID: 22, Content: "oldest", CreatedAt: now.Add(-3 * time.Minute)},
	}
	commentCounts := map[uint]int64{1: 4}
	authors := map[uint]*entity.Profile{
		20: {UserID: 20, Username: "alice"},
	}

	// Act
	entries := BuildFeed(posts, authors, nil, commentCounts, nil, comments)

	// Assert: максимум два свежих комментария, порядок выборки сохранен
	require.Len(t, entries, 1)
	require.Len(t, entries[0].RecentComments, entity.MaxRecentComments)
	assert.Equal(t, "newest", entries[0].RecentComments[0].Content)
	assert.Equal(t, "second", entries[0].RecentComments[1].Content)

	// Автор первого комментария найден, второго — нет (nil допустим)
	require.NotNil(t, entries[0].RecentComments[0].Author)
	assert.Equal(t, "alice", entries[0].RecentComments[0].Author.Username)
	assert.Nil(t, entries[0].RecentComments[1].Author)
}

func TestBuildFeed_RecentCommentsNotLongerThanCount(t *testing.T) {
	// Arrange: единственный комментарий
	posts := []entity.Post{{ID: 1}}
	comments := []entity.Comment{{ID: 7, PostID: 1, Content: "only"}}
	commentCounts := map[uint]int64{1: 1}

	// Act
	entries := BuildFeed(posts, nil, nil, commentCounts, nil, comments)

	// Assert: len(recentComments) <= min(2, commentCount)
	require.Len(t, entries, 1)
	assert.Len(t, entries[0].RecentComments, 1)
}

// ============================================================================
// GetFeed
// ============================================================================

func TestFeedService_GetFeed_EmptyFeed(t *testing.T) {
	// Arrange
	svc, postRepo, likeRepo, commentRepo, profileRepo := newFeedService()
	postRepo.On("GetLatest", DefaultFeedLimit).Return([]entity.Post{}, nil)

	// Act
	entries, err := svc.GetFeed(42, 0)

	// Assert: при пустой базе дальнейшие выборки не выполняются
	require.NoError(t, err)
	assert.Empty(t, entries)
	likeRepo.AssertNotCalled(t, "CountsByPostIDs", mock.Anything)
	commentRepo.AssertNotCalled(t, "CountsByPostIDs", mock.Anything)
	profileRepo.AssertNotCalled(t, "GetByUserIDs", mock.Anything)
}

func TestFeedService_GetFeed_LimitCapped(t *testing.T) {
	// Arrange
	svc, postRepo, _, _, _ := newFeedService()
	postRepo.On("GetLatest", MaxFeedLimit).Return([]entity.Post{}, nil)

	// Act
	_, err := svc.GetFeed(42, 500)

	// Assert: завышенный лимит обрезается
	require.NoError(t, err)
	postRepo.AssertExpectations(t)
}

func TestFeedService_GetFeed_AggregatesRelations(t *testing.T) {
	// Arrange
	svc, postRepo, likeRepo, commentRepo, profileRepo := newFeedService()
	posts := []entity.Post{{ID: 1, UserID: 10}, {ID: 2, UserID: 10}}
	postIDs := []uint{1, 2}

	postRepo.On("GetLatest", DefaultFeedLimit).Return(posts, nil)
	likeRepo.On("CountsByPostIDs", postIDs).Return(map[uint]int64{1: 2}, nil)
	commentRepo.On("CountsByPostIDs", postIDs).Return(map[uint]int64{}, nil)
	likeRepo.On("GetUserLikedPostIDs", uint(42), postIDs).Return([]uint{2}, nil)
	commentRepo.On("GetByPostIDs", postIDs).Return([]entity.Comment{}, nil)
	profileRepo.On("GetByUserIDs", []uint{10}).Return([]entity.Profile{{UserID: 10, Username: "bob"}}, nil)

	// Act
	entries, err := svc.GetFeed(42, 0)

	// Assert
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(2), entries[0].LikeCount)
	assert.True(t, entries[1].ViewerHasLiked)
	require.NotNil(t, entries[0].Author)
	assert.Equal(t, "bob", entries[0].Author.Username)
	postRepo.AssertExpectations(t)
	likeRepo.AssertExpectations(t)
	commentRepo.AssertExpectations(t)
	profileRepo.AssertExpectations(t)
}

// ============================================================================
// ToggleLike
// ============================================================================

func TestFeedService_ToggleLike_InsertsWhenAbsent(t *testing.T) {
	// Arrange
	svc, postRepo, likeRepo, _, _ := newFeedService()
	postRepo.On("GetByID", uint(1)).Return(&entity.Post{ID: 1}, nil)
	likeRepo.On("Exists", uint(1), uint(42)).Return(false, nil)
	likeRepo.On("InsertIgnoreDuplicate", mock.AnythingOfType("*entity.Like")).Return(nil)
	likeRepo.On("CountByPost", uint(1)).Return(int64(6), nil)

	// Act
	liked, count, err := svc.ToggleLike(1, 42)

	// Assert: счетчик — свежий пересчет, не инкремент
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(6), count)
	likeRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestFeedService_ToggleLike_DeletesWhenPresent(t *testing.T) {
	// Arrange
	svc, postRepo, likeRepo, _, _ := newFeedService()
	postRepo.On("GetByID", uint(1)).Return(&entity.Post{ID: 1}, nil)
	likeRepo.On("Exists", uint(1), uint(42)).Return(true, nil)
	likeRepo.On("Delete", uint(1), uint(42)).Return(nil)
	likeRepo.On("CountByPost", uint(1)).Return(int64(5), nil)

	// Act
	liked, count, err := svc.ToggleLike(1, 42)

	// Assert
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(5), count)
	likeRepo.AssertNotCalled(t, "InsertIgnoreDuplicate", mock.Anything)
}

func TestFeedService_ToggleLike_TwiceInSequence(t *testing.T) {
	// Arrange: первый вызов ставит лайк, второй снимает
	svc, postRepo, likeRepo, _, _ := newFeedService()
	postRepo.On("GetByID", uint(1)).Return(&entity.Post{ID: 1}, nil)

	likeRepo.On("Exists", uint(1), uint(42)).Return(false, nil).Once()
	likeRepo.On("InsertIgnoreDuplicate", mock.AnythingOfType("*entity.Like")).Return(nil).Once()
	likeRepo.On("CountByPost", uint(1)).Return(int64(1), nil).Once()

	likeRepo.On("Exists", uint(1), uint(42)).Return(true, nil).Once()
	likeRepo.On("Delete", uint(1), uint(42)).Return(nil).Once()
	likeRepo.On("CountByPost", uint(1)).Return(int64(0), nil).Once()

	// Act
	firstLiked, firstCount, err1 := svc.ToggleLike(1, 42)
	secondLiked, secondCount, err2 := svc.ToggleLike(1, 42)

	// Assert: liked:true затем liked:false, счетчик уменьшился на единицу
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, firstLiked)
	assert.False(t, secondLiked)
	assert.Equal(t, firstCount-1, secondCount)
}

func TestFeedService_ToggleLike_PostNotFound(t *testing.T) {
	// Arrange
	svc, postRepo, likeRepo, _, _ := newFeedService()
	postRepo.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound)

	// Act
	_, _, err := svc.ToggleLike(99, 42)

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	likeRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

// ============================================================================
// AddComment
// ============================================================================

func TestFeedService_AddComment_RejectsWhitespaceOnly(t *testing.T) {
	// Arrange
	svc, _, _, commentRepo, _ := newFeedService()

	// Act
	comment, err := svc.AddComment(1, 42, "   ")

	// Assert: ошибка валидации, в хранилище ничего не пишется
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Nil(t, comment)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestFeedService_AddComment_TrimsContent(t *testing.T) {
	// Arrange
	svc, postRepo, _, commentRepo, profileRepo := newFeedService()
	postRepo.On("GetByID", uint(1)).Return(&entity.Post{ID: 1}, nil)
	commentRepo.On("Create", mock.MatchedBy(func(c *entity.Comment) bool {
		return c.Content == "hi"
	})).Return(nil)
	profileRepo.On("GetByUserID", uint(42)).Return(&entity.Profile{UserID: 42, Username: "alice"}, nil)

	// Act
	comment, err := svc.AddComment(1, 42, " hi ")

	// Assert: " hi " сохраняется как "hi", автор прикреплен
	require.NoError(t, err)
	assert.Equal(t, "hi", comment.Content)
	require.NotNil(t, comment.Author)
	assert.Equal(t, "alice", comment.Author.Username)
	commentRepo.AssertExpectations(t)
}

func TestFeedService_AddComment_TooLong(t *testing.T) {
	// Arrange
	svc, _, _, commentRepo, _ := newFeedService()
	long := make([]byte, entity.MaxCommentLength+1)
	for i := range long {
		long[i] = 'a'
	}

	// Act
	_, err := svc.AddComment(1, 42, string(long))

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything)
}

// ============================================================================
// CreatePost
// ============================================================================

func TestFeedService_CreatePost_DefaultsVisibility(t *testing.T) {
	// Arrange
	svc, postRepo, _, _, _ := newFeedService()
	postRepo.On("Create", mock.MatchedBy(func(p *entity.Post) bool {
		return p.Visibility == entity.PostVisibilityPublic && p.Caption == "sunset"
	})).Return(nil)

	// Act
	post, err := svc.CreatePost(42, "https://cdn.example.com/img/abc.jpg", " sunset ", "")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, entity.PostVisibilityPublic, post.Visibility)
	postRepo.AssertExpectations(t)
}

func TestFeedService_CreatePost_RejectsMissingImage(t *testing.T) {
	// Arrange
	svc, postRepo, _, _, _ := newFeedService()

	// Act
	_, err := svc.CreatePost(42, "  ", "caption", "public")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	postRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestFeedService_CreatePost_RejectsUnknownVisibility(t *testing.T) {
	// Arrange
	svc, _, _, _, _ := newFeedService()

	// Act
	_, err := svc.CreatePost(42, "https://cdn.example.com/img/abc.jpg", "", "secret")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

// ============================================================================
// GetProfilePage
// ============================================================================

func TestFeedService_GetProfilePage(t *testing.T) {
	// Arrange
	svc, postRepo, likeRepo, commentRepo, profileRepo := newFeedService()
	profile := &entity.Profile{UserID: 10, Username: "bob"}
	posts := []entity.Post{{ID: 1, UserID: 10}, {ID: 2, UserID: 10}}
	postIDs := []uint{1, 2}

	profileRepo.On("GetByUsername", "bob").Return(profile, nil)
	postRepo.On("GetByUserID", uint(10)).Return(posts, nil)
	likeRepo.On("CountsByPostIDs", postIDs).Return(map[uint]int64{1: 3, 2: 4}, nil)
	commentRepo.On("CountsByPostIDs", postIDs).Return(map[uint]int64{}, nil)
	likeRepo.On("GetUserLikedPostIDs", uint(10), postIDs).Return([]uint{}, nil)
	commentRepo.On("GetByPostIDs", postIDs).Return([]entity.Comment{}, nil)
	profileRepo.On("GetByUserIDs", []uint{10}).Return([]entity.Profile{*profile}, nil)

	// Act: владелец смотрит собственный профиль
	page, err := svc.GetProfilePage("bob", 10)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, page.PostCount)
	assert.Equal(t, int64(7), page.LikeCount)
	assert.True(t, page.ViewerOwnsProfile)
}
