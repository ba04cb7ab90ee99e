package repository

import (
	"context"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	List(ctx context.Context) ([]entity.Question, error)
	GetByID(ctx context.Context, id uint) (*entity.Question, error)
	// Search ищет вопросы, текст которых содержит term без учёта регистра.
	// Символы % и _ в term работают как шаблоны LIKE.
	Search(ctx context.Context, term string) ([]entity.Question, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error)
	// ListExcluding возвращает вопросы категории, кроме excludeIDs.
	// entity.AllCategories отключает фильтр по категории.
	ListExcluding(ctx context.Context, categoryID uint, excludeIDs []uint) ([]entity.Question, error)
	Create(ctx context.Context, question *entity.Question) error
	Delete(ctx context.Context, id uint) error
}
