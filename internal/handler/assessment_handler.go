package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/skillgram-api/internal/domain/entity"
	"github.com/yourusername/skillgram-api/internal/handler/dto"
	"github.com/yourusername/skillgram-api/internal/handler/helper"
	"github.com/yourusername/skillgram-api/internal/service"
)

// AssessmentHandler обрабатывает запросы, связанные с тестами и попытками
type AssessmentHandler struct {
	assessmentService *service.AssessmentService
}

// NewAssessmentHandler создает новый обработчик тестов
func NewAssessmentHandler(assessmentService *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService}
}

// ListAssessments возвращает список доступных тестов
// GET /api/assessments
func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	assessments, err := h.assessmentService.ListAssessments()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	dtos := make([]*dto.AssessmentResponse, len(assessments))
	for i := range assessments {
		dtos[i] = dto.NewAssessmentResponse(&assessments[i])
	}
	c.JSON(http.StatusOK, gin.H{"assessments": dtos})
}

// GetAssessment возвращает тест с вопросами для прохождения.
// Правильные варианты в ответ не попадают.
// GET /api/assessments/:id
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	assessmentID := c.MustGet("assessmentID").(uint)

	assessment, questions, err := h.assessmentService.GetAssessmentWithQuestions(assessmentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	questionDTOs := make([]dto.QuestionResponse, len(questions))
	for i := range questions {
		questionDTOs[i] = dto.NewQuestionResponse(&questions[i])
	}
	c.JSON(http.StatusOK, dto.AssessmentDetailResponse{
		Assessment: dto.NewAssessmentResponse(assessment),
		Questions:  questionDTOs,
	})
}

// SubmitTestRequest представляет отправку ответов на тест.
// Ключи answers — идентификаторы вопросов, значения — выбранные варианты 1-4.
type SubmitTestRequest struct {
	AssessmentID uint         `json:"assessment_id" binding:"required"`
	Answers      map[uint]int `json:"answers" binding:"required"`
}

// SubmitTest принимает ответы, подсчитывает результат и создает попытку
// POST /api/assessments/submit
func (h *AssessmentHandler) SubmitTest(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var req SubmitTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt, err := h.assessmentService.SubmitTest(userID, req.AssessmentID, req.Answers)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"attempt_id": attempt.ID,
		"score":      attempt.Score,
	})
}

// GetAttemptResult возвращает результат попытки с разбором ответов
// GET /api/attempts/:id
func (h *AssessmentHandler) GetAttemptResult(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	attemptID := c.MustGet("attemptID").(uint)

	attempt, records, err := h.assessmentService.GetAttemptResult(attemptID, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAttemptResultResponse(attempt, records))
}

// GetMyAttempts возвращает историю попыток текущего пользователя
// GET /api/users/me/attempts?page=1&per_page=10
func (h *AssessmentHandler) GetMyAttempts(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	attempts, total, err := h.assessmentService.GetUserAttempts(userID, page, perPage)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	dtos := make([]dto.AttemptResponse, len(attempts))
	for i := range attempts {
		dtos[i] = dto.NewAttemptResponse(&attempts[i])
	}
	c.JSON(http.StatusOK, dto.PaginatedAttemptsResponse{
		Attempts: dtos,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
	})
}

// ExportAttempts экспортирует попытки теста в CSV или Excel формате
// GET /api/admin/assessments/:id/attempts/export?format=csv|xlsx
func (h *AssessmentHandler) ExportAttempts(c *gin.Context) {
	assessmentID := c.MustGet("assessmentID").(uint)
	format := c.DefaultQuery("format", "csv")

	attempts, err := h.assessmentService.GetAssessmentAttempts(assessmentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("assessment_%d_attempts_%s", assessmentID, time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, attempts, filename)
	default:
		h.exportCSV(c, attempts, filename)
	}
}

// exportCSV экспортирует попытки в CSV с правильным экранированием спецсимволов
func (h *AssessmentHandler) exportCSV(c *gin.Context, attempts []entity.Attempt, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"Попытка", "Пользователь", "Очки", "Всего вопросов", "Процент", "Оценка", "Завершена"})

	for _, a := range attempts {
		percentage := helper.Percentage(a.Score, a.TotalQuestions)
		writer.Write([]string{
			strconv.Itoa(int(a.ID)),
			strconv.Itoa(int(a.UserID)),
			strconv.Itoa(a.Score),
			strconv.Itoa(a.TotalQuestions),
			strconv.Itoa(percentage),
			helper.Grade(percentage),
			a.CompletedAt.Format(time.RFC3339),
		})
	}
}

// exportXLSX экспортирует попытки в Excel с использованием StreamWriter
func (h *AssessmentHandler) exportXLSX(c *gin.Context, attempts []entity.Attempt, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Попытки"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[AssessmentHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := []interface{}{"Попытка", "Пользователь", "Очки", "Всего вопросов", "Процент", "Оценка", "Завершена"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[AssessmentHandler] Ошибка записи заголовков: %v", err)
	}

	for i, a := range attempts {
		rowNum := i + 2 // Начинаем с 2 строки (1 - заголовки)
		cell := fmt.Sprintf("A%d", rowNum)

		percentage := helper.Percentage(a.Score, a.TotalQuestions)
		row := []interface{}{a.ID, a.UserID, a.Score, a.TotalQuestions, percentage, helper.Grade(percentage), a.CompletedAt.Format(time.RFC3339)}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[AssessmentHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[AssessmentHandler] Ошибка при Flush: %v", err)
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[AssessmentHandler] Ошибка записи Excel в response: %v", err)
	}
}
