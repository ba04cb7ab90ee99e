package repository

import (
	"context"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями (только чтение)
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id uint) (*entity.Category, error)
}
