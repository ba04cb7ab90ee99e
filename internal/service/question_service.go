package service

import (
	"context"
	"fmt"
	"log"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
	"github.com/yourusername/trivia-bank/internal/pkg/pagination"
)

// QuestionPage содержит страницу общего списка вопросов вместе с категориями
type QuestionPage struct {
	Questions  []entity.Question
	Total      int
	Categories []entity.Category
}

// CategoryPage содержит страницу вопросов одной категории
type CategoryPage struct {
	Category  *entity.Category
	Questions []entity.Question
	Total     int
}

// QuestionService реализует операции над банком вопросов
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	opts         ListOptions
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
	opts ListOptions,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		opts:         opts,
	}
}

// ListPage возвращает страницу вопросов, общее количество и все категории
func (s *QuestionService) ListPage(ctx context.Context, page int) (*QuestionPage, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	current := pagination.Paginate(questions, page, s.opts.pageSize())
	if s.opts.EmptyResultNotFound && (len(current) == 0 || len(categories) == 0) {
		return nil, fmt.Errorf("questions page %d: %w", page, apperrors.ErrNotFound)
	}

	return &QuestionPage{
		Questions:  current,
		Total:      len(questions),
		Categories: categories,
	}, nil
}

// GetQuestion возвращает вопрос по ID
func (s *QuestionService) GetQuestion(ctx context.Context, id uint) (*entity.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get question %d: %w", id, err)
	}
	return question, nil
}

// Search ищет вопросы по подстроке. Пустой результат не считается ошибкой.
func (s *QuestionService) Search(ctx context.Context, term string) ([]entity.Question, error) {
	questions, err := s.questionRepo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	if questions == nil {
		questions = []entity.Question{}
	}
	return questions, nil
}

// ListByCategory возвращает страницу вопросов категории.
// Отсутствующая категория — всегда ErrNotFound; пустая категория — по политике ListOptions.
func (s *QuestionService) ListByCategory(ctx context.Context, categoryID uint, page int) (*CategoryPage, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category %d: %w", categoryID, err)
	}

	questions, err := s.questionRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions of category %d: %w", categoryID, err)
	}

	current := pagination.Paginate(questions, page, s.opts.pageSize())
	if s.opts.EmptyResultNotFound && len(current) == 0 {
		return nil, fmt.Errorf("category %d page %d: %w", categoryID, page, apperrors.ErrNotFound)
	}

	return &CategoryPage{
		Category:  category,
		Questions: current,
		Total:     len(questions),
	}, nil
}

// CreateQuestion проверяет и сохраняет вопрос, затем возвращает первую страницу списка.
// Валидация выполняется до записи: неполный вопрос не попадает в хранилище.
func (s *QuestionService) CreateQuestion(ctx context.Context, question *entity.Question) ([]entity.Question, error) {
	if !question.IsComplete() {
		return nil, ErrIncompleteQuestion
	}

	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	log.Printf("[QuestionService] Создан вопрос #%d (категория %d)", question.ID, question.Category)

	return s.firstPage(ctx)
}

// DeleteQuestion удаляет вопрос и возвращает первую страницу оставшихся
func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) ([]entity.Question, error) {
	if err := s.questionRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	log.Printf("[QuestionService] Удалён вопрос #%d", id)

	return s.firstPage(ctx)
}

// ListAll возвращает все вопросы без пагинации (для экспорта)
func (s *QuestionService) ListAll(ctx context.Context) ([]entity.Question, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

func (s *QuestionService) firstPage(ctx context.Context) ([]entity.Question, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return pagination.Paginate(questions, 1, s.opts.pageSize()), nil
}
