package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-bank/internal/service"
)

func TestNextQuestion_Category(t *testing.T) {
	srv := newTestServer(t, service.DefaultListOptions())
	science := []uint{srv.questions[0].ID, srv.questions[1].ID}

	w := srv.do(t, http.MethodPost, "/quizzes", map[string]interface{}{
		"previous_questions": []uint{},
		"quiz_category":      map[string]interface{}{"id": 1, "type": "Science"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])
	question, ok := resp["question"].(map[string]interface{})
	require.True(t, ok, "Ожидался вопрос, получено %v", resp["question"])
	assert.Contains(t, science, uint(question["id"].(float64)))
	assert.Equal(t, float64(1), question["category"])
}

func TestNextQuestion_ExcludesPrevious(t *testing.T) {
	srv := newTestServer(t, service.DefaultListOptions())
	first, second := srv.questions[0].ID, srv.questions[1].ID

	w := srv.do(t, http.MethodPost, "/quizzes", map[string]interface{}{
		"previous_questions": []uint{first},
		"quiz_category":      map[string]interface{}{"id": "1"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	question := parseJSONResponse(t, w)["question"].(map[string]interface{})
	assert.Equal(t, float64(second), question["id"])
}

func TestNextQuestion_Exhausted(t *testing.T) {
	srv := newTestServer(t, service.DefaultListOptions())

	w := srv.do(t, http.MethodPost, "/quizzes", map[string]interface{}{
		"previous_questions": []uint{srv.questions[0].ID, srv.questions[1].ID},
		"quiz_category":      map[string]interface{}{"id": 1},
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Contains(t, resp, "question")
	assert.Nil(t, resp["question"])
}

func TestNextQuestion_AllCategories(t *testing.T) {
	srv := newTestServer(t, service.DefaultListOptions())

	// Исключаем оба вопроса Science: остаётся только вопрос из Art
	w := srv.do(t, http.MethodPost, "/quizzes", map[string]interface{}{
		"previous_questions": []uint{srv.questions[0].ID, srv.questions[1].ID},
		"quiz_category":      map[string]interface{}{"id": 0, "type": "click"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	question := parseJSONResponse(t, w)["question"].(map[string]interface{})
	assert.Equal(t, float64(srv.questions[2].ID), question["id"])
	assert.Equal(t, float64(2), question["category"])
}

func TestNextQuestion_MissingPreviousDefaultsToEmpty(t *testing.T) {
	srv := newTestServer(t, service.DefaultListOptions())

	w := srv.do(t, http.MethodPost, "/quizzes", map[string]interface{}{
		"quiz_category": map[string]interface{}{"id": 2},
	})
	require.Equal(t, http.StatusOK, w.Code)

	question := parseJSONResponse(t, w)["question"].(map[string]interface{})
	assert.Equal(t, float64(srv.questions[2].ID), question["id"])
}

func TestNextQuestion_BadRequest(t *testing.T) {
	srv := newTestServer(t, service.DefaultListOptions())

	tests := []struct {
		name string
		body interface{}
	}{
		{"empty object", map[string]interface{}{}},
		{"null category", map[string]interface{}{"previous_questions": []uint{}, "quiz_category": nil}},
		{"negative category", map[string]interface{}{"quiz_category": map[string]interface{}{"id": -3}}},
		{"non numeric category", map[string]interface{}{"quiz_category": map[string]interface{}{"id": "science"}}},
		{"previous is not a list", map[string]interface{}{"previous_questions": "1,2", "quiz_category": map[string]interface{}{"id": 1}}},
		{"malformed json", `{"quiz_category":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(t, http.MethodPost, "/quizzes", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := parseJSONResponse(t, w)
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, float64(400), resp["error"])
		})
	}
}
