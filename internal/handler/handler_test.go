package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yourusername/skillgram-api/internal/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestGinContext создает *gin.Context для тестов с JSON body
func newTestGinContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()

	var req *http.Request
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		req, _ = http.NewRequest(method, path, bytes.NewReader(bodyBytes))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

// parseJSONResponse парсит JSON ответ из *httptest.ResponseRecorder
func parseJSONResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Response body should be valid JSON: %s", w.Body.String())
	return resp
}

// ============================================================================
// handleServiceError — отображение ошибок сервисного слоя на HTTP статусы
// ============================================================================

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"NotFound", fmt.Errorf("%w: attempt 7", apperrors.ErrNotFound), http.StatusNotFound},
		{"Conflict", fmt.Errorf("%w: username taken", apperrors.ErrConflict), http.StatusConflict},
		{"Validation", fmt.Errorf("%w: bad option", apperrors.ErrValidation), http.StatusUnprocessableEntity},
		{"Unauthorized", fmt.Errorf("%w: bad credentials", apperrors.ErrUnauthorized), http.StatusUnauthorized},
		{"Forbidden", fmt.Errorf("%w: foreign attempt", apperrors.ErrForbidden), http.StatusForbidden},
		{"Internal", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestGinContext(http.MethodGet, "/test", nil)

			handleServiceError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandleServiceError_HidesInternalDetails(t *testing.T) {
	// Arrange
	c, w := newTestGinContext(http.MethodGet, "/test", nil)

	// Act
	handleServiceError(c, errors.New("pq: connection refused at 10.0.0.5"))

	// Assert: текст внутренней ошибки не утекает клиенту
	resp := parseJSONResponse(t, w)
	assert.Equal(t, "Internal server error", resp["error"])
}

// ============================================================================
// Request validation tests — не требуют реальных сервисов,
// handler возвращает 400 до вызова сервиса
// ============================================================================

func TestSubmitTest_ValidationErrors(t *testing.T) {
	handler := &AssessmentHandler{} // nil service — OK для validation tests

	tests := []struct {
		name string
		body interface{}
	}{
		{"empty body", nil},
		{"missing assessment_id", map[string]interface{}{"answers": map[string]int{"1": 2}}},
		{"missing answers", map[string]interface{}{"assessment_id": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestGinContext(http.MethodPost, "/api/assessments/submit", tt.body)
			c.Set("user_id", uint(42))

			handler.SubmitTest(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAddComment_ValidationErrors(t *testing.T) {
	handler := &PostHandler{}

	tests := []struct {
		name string
		body interface{}
	}{
		{"empty body", nil},
		{"missing content", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestGinContext(http.MethodPost, "/api/posts/1/comments", tt.body)
			c.Set("user_id", uint(42))
			c.Set("postID", uint(1))

			handler.AddComment(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreatePost_ValidationErrors(t *testing.T) {
	handler := &PostHandler{}

	tests := []struct {
		name string
		body interface{}
	}{
		{"missing image_url", map[string]string{"caption": "hi"}},
		{"invalid image_url", map[string]string{"image_url": "not a url"}},
		{"unknown visibility", map[string]string{"image_url": "https://cdn.example.com/a.jpg", "visibility": "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestGinContext(http.MethodPost, "/api/posts", tt.body)
			c.Set("user_id", uint(42))

			handler.CreatePost(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRegister_ValidationErrors(t *testing.T) {
	handler := &AuthHandler{}

	tests := []struct {
		name string
		body interface{}
	}{
		{"empty body", nil},
		{"bad email", map[string]string{"email": "not-an-email", "password": "password123"}},
		{"short password", map[string]string{"email": "a@b.com", "password": "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestGinContext(http.MethodPost, "/api/auth/register", tt.body)

			handler.Register(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
