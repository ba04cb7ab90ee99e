package quizmanager

import (
	"math/rand"
	"sync"
	"time"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// Selector выбирает следующий вопрос викторины: равновероятно среди ещё не заданных.
// Источник случайности внедряется, чтобы выбор был детерминированным в тестах.
type Selector struct {
	mu  sync.Mutex // *rand.Rand не безопасен для конкурентного использования
	rnd *rand.Rand
}

// NewSelector создает селектор с заданным источником случайности
func NewSelector(src rand.Source) *Selector {
	return &Selector{rnd: rand.New(src)}
}

// NewDefaultSelector создает селектор с источником, засеянным текущим временем
func NewDefaultSelector() *Selector {
	return NewSelector(rand.NewSource(time.Now().UnixNano()))
}

// Select возвращает случайный вопрос из pool, чей ID не входит в previousIDs.
// nil означает, что вопросы закончились; это не ошибка.
func (s *Selector) Select(pool []entity.Question, previousIDs []uint) *entity.Question {
	candidates := Unseen(pool, previousIDs)
	if len(candidates) == 0 {
		return nil
	}

	s.mu.Lock()
	idx := s.rnd.Intn(len(candidates))
	s.mu.Unlock()

	chosen := candidates[idx]
	return &chosen
}

// Unseen отфильтровывает уже заданные вопросы, сохраняя порядок pool
func Unseen(pool []entity.Question, previousIDs []uint) []entity.Question {
	if len(previousIDs) == 0 {
		return pool
	}

	seen := make(map[uint]struct{}, len(previousIDs))
	for _, id := range previousIDs {
		seen[id] = struct{}{}
	}

	candidates := make([]entity.Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			candidates = append(candidates, q)
		}
	}
	return candidates
}
