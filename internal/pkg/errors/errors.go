package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется для ошибок авторизации (неверный токен, нет прав).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden используется, когда у пользователя недостаточно прав для действия.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation используется для ошибок валидации входных данных
	// (пустой комментарий, слишком короткий username и т.п.).
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется для конфликтов состояния (например, занятый username).
	ErrConflict = errors.New("resource state conflict")
)
