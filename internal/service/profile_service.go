package service

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/yourusername/skillgram-api/internal/domain/entity"
	"github.com/yourusername/skillgram-api/internal/domain/repository"
	apperrors "github.com/yourusername/skillgram-api/internal/pkg/errors"
)

const (
	usernameFallback    = "user"
	maxUsernameAttempts = 10
	minUsernameLength   = 3
	maxUsernameLength   = 30
)

var (
	invalidUsernameChars  = regexp.MustCompile(`[^a-z0-9_]+`)
	repeatedUnderscores   = regexp.MustCompile(`_{2,}`)
	surroundingUnderscore = regexp.MustCompile(`^_+|_+$`)
)

// ProfileService предоставляет методы для работы с профилями соцсети
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// NewProfileService создает новый сервис профилей
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// slugifyUsername приводит произвольную строку к допустимому username:
// нижний регистр, только [a-z0-9_], без повторных и краевых подчеркиваний
func slugifyUsername(input string) string {
	slug := strings.ToLower(input)
	slug = invalidUsernameChars.ReplaceAllString(slug, "")
	slug = repeatedUnderscores.ReplaceAllString(slug, "_")
	slug = surroundingUnderscore.ReplaceAllString(slug, "")
	if slug == "" {
		return usernameFallback
	}
	if len(slug) > maxUsernameLength {
		slug = slug[:maxUsernameLength]
	}
	return slug
}

// EnsureProfile возвращает профиль пользователя, создавая его при первом
// обращении. Базовый username выводится из имени или email; при коллизии
// перебираются числовые суффиксы, после исчерпания попыток — суффикс
// из отметки времени.
func (s *ProfileService) EnsureProfile(userID uint) (*entity.Profile, error) {
	existing, err := s.profileRepo.GetByUserID(userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	seed := strings.TrimSpace(user.Name)
	if seed == "" {
		seed = strings.SplitN(user.Email, "@", 2)[0]
	}
	base := slugifyUsername(seed)

	candidate := base
	for attempt := 0; attempt < maxUsernameAttempts; attempt++ {
		if attempt > 0 {
			candidate = base + strconv.Itoa(attempt)
		}

		_, err := s.profileRepo.GetByUsername(candidate)
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.createProfile(userID, candidate, user.Name)
		}
		if err != nil {
			return nil, err
		}
	}

	// Все кандидаты заняты — суффикс из отметки времени практически уникален
	fallback := base + strconv.FormatInt(time.Now().UnixNano(), 36)
	if len(fallback) > maxUsernameLength {
		fallback = fallback[:maxUsernameLength]
	}
	return s.createProfile(userID, fallback, user.Name)
}

func (s *ProfileService) createProfile(userID uint, username, displayName string) (*entity.Profile, error) {
	profile := &entity.Profile{
		UserID:      userID,
		Username:    username,
		DisplayName: displayName,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		log.Printf("[ProfileService] Не удалось создать профиль для user_id=%d: %v", userID, err)
		return nil, err
	}
	return profile, nil
}

// UpdateProfileInput содержит изменяемые поля профиля
type UpdateProfileInput struct {
	Username    string
	DisplayName string
	Bio         string
}

// UpdateProfile обновляет профиль пользователя. Username нормализуется
// и проверяется на уникальность среди остальных профилей.
func (s *ProfileService) UpdateProfile(userID uint, input UpdateProfileInput) (*entity.Profile, error) {
	profile, err := s.EnsureProfile(userID)
	if err != nil {
		return nil, err
	}

	username := slugifyUsername(input.Username)
	if len(username) < minUsernameLength {
		return nil, fmt.Errorf("%w: username must be at least %d characters", apperrors.ErrValidation, minUsernameLength)
	}

	other, err := s.profileRepo.GetByUsername(username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if err == nil && other.UserID != userID {
		return nil, fmt.Errorf("%w: username '%s' already taken", apperrors.ErrConflict, username)
	}

	profile.Username = username
	profile.DisplayName = strings.TrimSpace(input.DisplayName)
	profile.Bio = strings.TrimSpace(input.Bio)

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, fmt.Errorf("не удалось обновить профиль: %w", err)
	}

	return profile, nil
}

// GetByUsername возвращает профиль по username
func (s *ProfileService) GetByUsername(username string) (*entity.Profile, error) {
	return s.profileRepo.GetByUsername(username)
}
