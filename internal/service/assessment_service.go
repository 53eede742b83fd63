package service

import (
	"fmt"
	"log"
	"time"

	"github.com/yourusername/skillgram-api/internal/domain/entity"
	"github.com/yourusername/skillgram-api/internal/domain/repository"
	apperrors "github.com/yourusername/skillgram-api/internal/pkg/errors"
)

// questionCacheTTL — время жизни кеша набора вопросов.
// Вопросы неизменяемы после создания, поэтому кешировать их безопасно.
const questionCacheTTL = 10 * time.Minute

// cachedQuestion дублирует entity.Question для кеша.
// Нужен отдельный тип: у entity.Question поле CorrectOption скрыто
// от JSON (`json:"-"`) и при маршалинге в кеш потерялось бы.
type cachedQuestion struct {
	ID            uint   `json:"id"`
	AssessmentID  uint   `json:"assessment_id"`
	Text          string `json:"text"`
	Option1       string `json:"option1"`
	Option2       string `json:"option2"`
	Option3       string `json:"option3"`
	Option4       string `json:"option4"`
	CorrectOption int    `json:"correct_option"`
	Position      int    `json:"position"`
}

// AssessmentService предоставляет методы для работы с тестами и попытками
type AssessmentService struct {
	assessmentRepo repository.AssessmentRepository
	questionRepo   repository.QuestionRepository
	attemptRepo    repository.AttemptRepository
	cacheRepo      repository.CacheRepository
}

// NewAssessmentService создает новый сервис тестов
func NewAssessmentService(
	assessmentRepo repository.AssessmentRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	cacheRepo repository.CacheRepository,
) *AssessmentService {
	return &AssessmentService{
		assessmentRepo: assessmentRepo,
		questionRepo:   questionRepo,
		attemptRepo:    attemptRepo,
		cacheRepo:      cacheRepo,
	}
}

// ListAssessments возвращает все доступные тесты
func (s *AssessmentService) ListAssessments() ([]entity.Assessment, error) {
	return s.assessmentRepo.List()
}

// GetAssessmentWithQuestions возвращает тест вместе с вопросами.
// Правильные варианты скрываются на уровне сериализации DTO.
func (s *AssessmentService) GetAssessmentWithQuestions(assessmentID uint) (*entity.Assessment, []entity.Question, error) {
	assessment, err := s.assessmentRepo.GetByID(assessmentID)
	if err != nil {
		return nil, nil, err
	}

	questions, err := s.getQuestions(assessmentID)
	if err != nil {
		return nil, nil, err
	}

	return assessment, questions, nil
}

// SubmitTest подсчитывает результат отправки и сохраняет попытку вместе
// с записями ответов одной транзакцией. Повторная отправка создает новую
// попытку: существующие попытки никогда не изменяются.
func (s *AssessmentService) SubmitTest(userID, assessmentID uint, answers map[uint]int) (*entity.Attempt, error) {
	assessment, err := s.assessmentRepo.GetByID(assessmentID)
	if err != nil {
		return nil, err
	}

	questions, err := s.getQuestions(assessment.ID)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить вопросы теста: %w", err)
	}

	// Выбранные варианты обязаны быть целыми 1-4. Проверяем до подсчета:
	// сам подсчет вход не нормализует.
	byID := make(map[uint]*entity.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}
	for questionID, selected := range answers {
		question, ok := byID[questionID]
		if !ok {
			// Ответ на вопрос не из этого набора — игнорируется при подсчете
			continue
		}
		if !question.IsValidOption(selected) {
			return nil, fmt.Errorf("%w: selected option %d for question %d is out of range", apperrors.ErrValidation, selected, questionID)
		}
	}

	score, records := ScoreSubmission(questions, answers)

	now := time.Now()
	attempt := &entity.Attempt{
		UserID:         userID,
		AssessmentID:   assessment.ID,
		Score:          score,
		TotalQuestions: len(questions),
		StartedAt:      now,
		CompletedAt:    now,
	}

	if err := s.attemptRepo.CreateWithRecords(attempt, records); err != nil {
		return nil, fmt.Errorf("не удалось сохранить попытку: %w", err)
	}

	return attempt, nil
}

// GetAttemptResult возвращает попытку с записями ответов.
// Чужие попытки недоступны (кроме администратора — это решает обработчик).
func (s *AssessmentService) GetAttemptResult(attemptID, viewerID uint) (*entity.Attempt, []entity.AnswerRecord, error) {
	attempt, err := s.attemptRepo.GetByID(attemptID)
	if err != nil {
		return nil, nil, err
	}

	if attempt.UserID != viewerID {
		return nil, nil, fmt.Errorf("%w: attempt belongs to another user", apperrors.ErrForbidden)
	}

	records, err := s.attemptRepo.GetRecords(attempt.ID)
	if err != nil {
		return nil, nil, err
	}

	return attempt, records, nil
}

// GetUserAttempts возвращает пагинированную историю попыток пользователя
func (s *AssessmentService) GetUserAttempts(userID uint, page, pageSize int) ([]entity.Attempt, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	} else if pageSize > 100 {
		pageSize = 100
	}

	offset := (page - 1) * pageSize
	return s.attemptRepo.GetUserAttempts(userID, pageSize, offset)
}

// GetAssessmentAttempts возвращает все попытки теста (для экспорта)
func (s *AssessmentService) GetAssessmentAttempts(assessmentID uint) ([]entity.Attempt, error) {
	if _, err := s.assessmentRepo.GetByID(assessmentID); err != nil {
		return nil, err
	}
	return s.attemptRepo.GetAssessmentAttempts(assessmentID)
}

// getQuestions возвращает набор вопросов теста, по возможности из кеша.
// Ошибки кеша не фатальны: идем в БД и перезаписываем кеш.
func (s *AssessmentService) getQuestions(assessmentID uint) ([]entity.Question, error) {
	cacheKey := fmt.Sprintf("assessment:%d:questions", assessmentID)

	if s.cacheRepo != nil {
		var cached []cachedQuestion
		if err := s.cacheRepo.GetJSON(cacheKey, &cached); err == nil && len(cached) > 0 {
			return fromCachedQuestions(cached), nil
		}
	}

	questions, err := s.questionRepo.GetByAssessmentID(assessmentID)
	if err != nil {
		return nil, err
	}

	if s.cacheRepo != nil && len(questions) > 0 {
		if err := s.cacheRepo.SetJSON(cacheKey, toCachedQuestions(questions), questionCacheTTL); err != nil {
			log.Printf("[AssessmentService] Не удалось записать вопросы в кеш: %v", err)
		}
	}

	return questions, nil
}

func toCachedQuestions(questions []entity.Question) []cachedQuestion {
	cached := make([]cachedQuestion, len(questions))
	for i, q := range questions {
		cached[i] = cachedQuestion{
			ID:            q.ID,
			AssessmentID:  q.AssessmentID,
			Text:          q.Text,
			Option1:       q.Option1,
			Option2:       q.Option2,
			Option3:       q.Option3,
			Option4:       q.Option4,
			CorrectOption: q.CorrectOption,
			Position:      q.Position,
		}
	}
	return cached
}

func fromCachedQuestions(cached []cachedQuestion) []entity.Question {
	questions := make([]entity.Question, len(cached))
	for i, c := range cached {
		questions[i] = entity.Question{
			ID:            c.ID,
			AssessmentID:  c.AssessmentID,
			Text:          c.Text,
			Option1:       c.Option1,
			Option2:       c.Option2,
			Option3:       c.Option3,
			Option4:       c.Option4,
			CorrectOption: c.CorrectOption,
			Position:      c.Position,
		}
	}
	return questions
}
