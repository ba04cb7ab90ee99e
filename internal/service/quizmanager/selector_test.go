package quizmanager

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

func testPool() []entity.Question {
	return []entity.Question{
		{ID: 1, Question: "Q1", Answer: "A1", Category: 1, Difficulty: 1},
		{ID: 2, Question: "Q2", Answer: "A2", Category: 1, Difficulty: 2},
		{ID: 3, Question: "Q3", Answer: "A3", Category: 2, Difficulty: 3},
		{ID: 4, Question: "Q4", Answer: "A4", Category: 2, Difficulty: 4},
	}
}

func TestSelector_NeverReturnsPrevious(t *testing.T) {
	selector := NewSelector(rand.NewSource(42))
	previous := []uint{1, 3}

	for i := 0; i < 200; i++ {
		q := selector.Select(testPool(), previous)
		require.NotNil(t, q)
		assert.NotContains(t, previous, q.ID, "Выбранный вопрос не должен быть среди уже заданных")
	}
}

func TestSelector_ExhaustedPoolReturnsNil(t *testing.T) {
	selector := NewSelector(rand.NewSource(1))

	assert.Nil(t, selector.Select(testPool(), []uint{1, 2, 3, 4}))
	assert.Nil(t, selector.Select(nil, nil), "Пустой пул — nil, а не ошибка")
}

func TestSelector_SingleCandidate(t *testing.T) {
	selector := NewSelector(rand.NewSource(7))

	q := selector.Select(testPool(), []uint{1, 2, 4})
	require.NotNil(t, q)
	assert.Equal(t, uint(3), q.ID)
}

func TestSelector_DeterministicWithSameSeed(t *testing.T) {
	a := NewSelector(rand.NewSource(2024))
	b := NewSelector(rand.NewSource(2024))

	for i := 0; i < 20; i++ {
		qa := a.Select(testPool(), nil)
		qb := b.Select(testPool(), nil)
		require.NotNil(t, qa)
		require.NotNil(t, qb)
		assert.Equal(t, qa.ID, qb.ID, "Одинаковый seed даёт одинаковую последовательность выбора")
	}
}

func TestSelector_CoversAllCandidates(t *testing.T) {
	selector := NewSelector(rand.NewSource(99))
	hits := make(map[uint]int)

	for i := 0; i < 400; i++ {
		q := selector.Select(testPool(), []uint{4})
		require.NotNil(t, q)
		hits[q.ID]++
	}

	// Равновероятный выбор: каждый из трёх кандидатов выпадает
	assert.Len(t, hits, 3)
	for id, n := range hits {
		assert.Greater(t, n, 50, "Кандидат %d выпадает заметно реже ожидаемого", id)
	}
}

func TestUnseen_PreservesOrder(t *testing.T) {
	got := Unseen(testPool(), []uint{2, 99})
	assert.Equal(t, []uint{1, 3, 4}, idsOf(got))

	all := Unseen(testPool(), nil)
	assert.Len(t, all, 4)
}

// idsOf возвращает идентификаторы вопросов в исходном порядке
func idsOf(questions []entity.Question) []uint {
	ids := make([]uint, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}
