package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-bank/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// Тексты ошибок, которые ожидает фронтенд
var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusNotFound:            "Resource not found",
	http.StatusMethodNotAllowed:    "Method not allowed",
	http.StatusUnprocessableEntity: "Unprocessable entity",
	http.StatusTooManyRequests:     "Too many requests",
	http.StatusServiceUnavailable:  "Service unavailable",
	http.StatusInternalServerError: "Internal server error",
}

// ErrorMessage возвращает текст ошибки для HTTP статуса
func ErrorMessage(status int) string {
	if msg, ok := errorMessages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}

// respondError отправляет ошибку в едином формате {success, error, message}
func respondError(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Success: false,
		Error:   status,
		Message: ErrorMessage(status),
	})
}

// handleServiceError переводит ошибку сервиса в HTTP ответ.
// Валидация → 400, отсутствие записи → 404, любая ошибка хранилища → 422.
func handleServiceError(c *gin.Context, component string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		respondError(c, http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound)
	default:
		log.Printf("[%s] Ошибка хранилища: %v", component, err)
		respondError(c, http.StatusUnprocessableEntity)
	}
}

// NoRoute отвечает 404 в едином формате для неизвестных маршрутов
func NoRoute(c *gin.Context) {
	respondError(c, http.StatusNotFound)
}

// NoMethod отвечает 405 в едином формате для неподдерживаемых методов
func NoMethod(c *gin.Context) {
	respondError(c, http.StatusMethodNotAllowed)
}
