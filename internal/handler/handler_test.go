package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	pgRepo "github.com/yourusername/trivia-bank/internal/repository/postgres"
	"github.com/yourusername/trivia-bank/internal/service"
	"github.com/yourusername/trivia-bank/internal/service/quizmanager"
	"github.com/yourusername/trivia-bank/pkg/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testOrigin = "http://localhost:3000"

// testServer собирает роутер поверх in-memory SQLite с засеянными данными
type testServer struct {
	router    *gin.Engine
	db        *gorm.DB
	questions []entity.Question
}

// newTestServer засевает категории Science(1), Art(2) и три вопроса: два в Science, один в Art
func newTestServer(t *testing.T, opts service.ListOptions) *testServer {
	t.Helper()

	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrateSQLite(db, []entity.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)

	seeded := []entity.Question{
		{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
		{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
		{Question: "Which Dutch graphic artist created impossible objects?", Answer: "Escher", Category: 2, Difficulty: 1},
	}
	for i := range seeded {
		require.NoError(t, questionRepo.Create(context.Background(), &seeded[i]))
	}

	questionService := service.NewQuestionService(questionRepo, categoryRepo, opts)
	categoryService := service.NewCategoryService(categoryRepo, opts)
	quizService := service.NewQuizService(questionRepo, quizmanager.NewSelector(rand.NewSource(1)))

	router := NewRouter(RouterDeps{
		QuestionHandler: NewQuestionHandler(questionService),
		CategoryHandler: NewCategoryHandler(categoryService, questionService),
		QuizHandler:     NewQuizHandler(quizService),
		HealthHandler:   NewHealthHandler(db),
		AllowedOrigin:   testOrigin,
	})

	return &testServer{router: router, db: db, questions: seeded}
}

// do выполняет запрос; body сериализуется в JSON, если это не строка
func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// parseJSONResponse парсит JSON ответ из *httptest.ResponseRecorder
func parseJSONResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Response body should be valid JSON: %s", w.Body.String())
	return resp
}

// questionIDs извлекает id вопросов из JSON-массива ответа
func questionIDs(t *testing.T, raw interface{}) []uint {
	t.Helper()
	items, ok := raw.([]interface{})
	require.True(t, ok, "questions должен быть массивом, получено %T", raw)

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		obj := item.(map[string]interface{})
		ids = append(ids, uint(obj["id"].(float64)))
	}
	return ids
}

// countQuestions считает вопросы напрямую в базе
func (s *testServer) countQuestions(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, s.db.Model(&entity.Question{}).Count(&count).Error)
	return count
}

// idsOf возвращает идентификаторы вопросов в исходном порядке
func idsOf(questions []entity.Question) []uint {
	ids := make([]uint, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}
