package service

import (
	"fmt"

	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// Ошибки валидации сервисов. Оборачивают apperrors.ErrValidation, чтобы обработчики отвечали 400.
var (
	ErrIncompleteQuestion  = fmt.Errorf("%w: question, answer, category and difficulty are required", apperrors.ErrValidation)
	ErrMissingQuizCategory = fmt.Errorf("%w: quiz_category is required", apperrors.ErrValidation)
)
