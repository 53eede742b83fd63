package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/yourusername/skillgram-api/internal/domain/entity"
	"github.com/yourusername/skillgram-api/internal/domain/repository"
	apperrors "github.com/yourusername/skillgram-api/internal/pkg/errors"
	"github.com/yourusername/skillgram-api/pkg/auth"
)

const welcomeEmailTimeout = 10 * time.Second

// AuthService предоставляет методы для аутентификации
type AuthService struct {
	userRepo       repository.UserRepository
	profileService *ProfileService
	emailService   EmailService
	jwtService     *auth.JWTService
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(
	userRepo repository.UserRepository,
	profileService *ProfileService,
	emailService EmailService,
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		profileService: profileService,
		emailService:   emailService,
		jwtService:     jwtService,
	}
}

// AuthResult содержит пользователя и выданный токен
type AuthResult struct {
	User  *entity.User
	Token string
}

// Register регистрирует нового пользователя, создает ему профиль
// и отправляет приветственное письмо. Письмо не критично:
// сбой отправки не откатывает регистрацию.
func (s *AuthService) Register(name, email, password string) (*AuthResult, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", apperrors.ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", apperrors.ErrValidation)
	}

	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, fmt.Errorf("%w: email '%s' already registered", apperrors.ErrConflict, email)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	user := &entity.User{
		Name:     name,
		Email:    email,
		Password: password, // хешируется хуком BeforeSave
		Role:     "user",
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("не удалось создать пользователя: %w", err)
	}

	if _, err := s.profileService.EnsureProfile(user.ID); err != nil {
		// Профиль досоздастся лениво при первом обращении к соцсети
		log.Printf("[AuthService] Не удалось создать профиль при регистрации user_id=%d: %v", user.ID, err)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), welcomeEmailTimeout)
		defer cancel()
		if err := s.emailService.SendWelcomeEmail(ctx, user.Email, user.Name); err != nil {
			log.Printf("[AuthService] Не удалось отправить приветственное письмо user_id=%d: %v", user.ID, err)
		}
	}()

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("не удалось выдать токен: %w", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Login проверяет учетные данные и выдает токен.
// Несуществующий email и неверный пароль неразличимы для клиента.
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	if !user.CheckPassword(password) {
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("не удалось выдать токен: %w", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// GetUserByID возвращает пользователя по идентификатору
func (s *AuthService) GetUserByID(userID uint) (*entity.User, error) {
	return s.userRepo.GetByID(userID)
}
