package service

import (
	"context"
	"fmt"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
	"github.com/yourusername/trivia-bank/internal/service/quizmanager"
)

// QuizService выдаёт вопросы для режима игры
type QuizService struct {
	questionRepo repository.QuestionRepository
	selector     *quizmanager.Selector
}

// NewQuizService создает новый сервис викторины
func NewQuizService(questionRepo repository.QuestionRepository, selector *quizmanager.Selector) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		selector:     selector,
	}
}

// NextQuestion возвращает случайный ещё не заданный вопрос категории
// (entity.AllCategories — из всех категорий). nil без ошибки — вопросы закончились.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID uint, previousIDs []uint) (*entity.Question, error) {
	pool, err := s.questionRepo.ListExcluding(ctx, categoryID, previousIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz pool for category %d: %w", categoryID, err)
	}

	return s.selector.Select(inCategory(pool, categoryID), previousIDs), nil
}

// inCategory оставляет только вопросы выбранной категории
func inCategory(pool []entity.Question, categoryID uint) []entity.Question {
	filtered := pool[:0:0]
	for _, q := range pool {
		if q.InCategory(categoryID) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}
