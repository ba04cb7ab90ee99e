package service

import (
	"context"
	"fmt"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// CategoryService предоставляет чтение категорий
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	opts         ListOptions
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(categoryRepo repository.CategoryRepository, opts ListOptions) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		opts:         opts,
	}
}

// ListCategories возвращает все категории
func (s *CategoryService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if len(categories) == 0 && s.opts.EmptyResultNotFound {
		return nil, fmt.Errorf("no categories: %w", apperrors.ErrNotFound)
	}
	return categories, nil
}
