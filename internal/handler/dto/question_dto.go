package dto

import (
	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/handler/helper"
)

// CreateQuestionRequest описывает тело POST /questions.
// Все четыре поля обязательны; пустые строки и нули считаются отсутствующими.
type CreateQuestionRequest struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   FlexInt `json:"category"`
	Difficulty FlexInt `json:"difficulty"`
}

// ToEntity преобразует запрос в сущность. ok=false, если category отрицательна.
func (r *CreateQuestionRequest) ToEntity() (*entity.Question, bool) {
	category, ok := r.Category.Uint()
	if !ok {
		return nil, false
	}
	return &entity.Question{
		Question:   r.Question,
		Answer:     r.Answer,
		Category:   category,
		Difficulty: int(r.Difficulty),
	}, true
}

// SearchRequest описывает тело POST /questions/search. Отсутствующий searchTerm равен "" и находит все вопросы.
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// QuizCategory — категория, выбранная в режиме игры. ID 0 означает все категории.
type QuizCategory struct {
	ID   FlexInt `json:"id"`
	Type string  `json:"type"`
}

// QuizRequest описывает тело POST /quizzes. quiz_category обязателен, previous_questions по умолчанию пуст.
type QuizRequest struct {
	PreviousQuestions []uint        `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// CategoriesResponse описывает ответ GET /categories
type CategoriesResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

// QuestionListResponse описывает ответ GET /questions
type QuestionListResponse struct {
	Success         bool              `json:"success"`
	Questions       []entity.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	Categories      map[uint]string   `json:"categories"`
	CurrentCategory *string           `json:"current_category"`
}

// SearchResponse описывает ответ POST /questions/search
type SearchResponse struct {
	Success         bool              `json:"success"`
	Questions       []entity.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory *string           `json:"current_category"`
}

// CategoryQuestionsResponse описывает ответ GET /categories/:id/questions
type CategoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []entity.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory string            `json:"current_category"`
}

// QuestionResponse описывает ответ GET /questions/:id
type QuestionResponse struct {
	Success  bool             `json:"success"`
	Question *entity.Question `json:"question"`
}

// CreatedResponse описывает ответ POST /questions
type CreatedResponse struct {
	Success   bool              `json:"success"`
	Created   uint              `json:"created"`
	Questions []entity.Question `json:"questions"`
}

// DeletedResponse описывает ответ DELETE /questions/:id
type DeletedResponse struct {
	Success   bool              `json:"success"`
	Deleted   uint              `json:"deleted"`
	Questions []entity.Question `json:"questions"`
}

// QuizResponse описывает ответ POST /quizzes. Question = null, когда вопросы закончились.
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *entity.Question `json:"question"`
}

// ErrorResponse описывает единый формат ошибок
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// NewQuestionListResponse создает DTO для страницы вопросов
func NewQuestionListResponse(questions []entity.Question, total int, categories []entity.Category) *QuestionListResponse {
	return &QuestionListResponse{
		Success:        true,
		Questions:      nonNil(questions),
		TotalQuestions: total,
		Categories:     helper.CategoriesToMap(categories),
	}
}

// NewSearchResponse создает DTO для результатов поиска
func NewSearchResponse(questions []entity.Question) *SearchResponse {
	return &SearchResponse{
		Success:        true,
		Questions:      nonNil(questions),
		TotalQuestions: len(questions),
	}
}

// NewCategoryQuestionsResponse создает DTO для вопросов категории
func NewCategoryQuestionsResponse(category *entity.Category, questions []entity.Question, total int) *CategoryQuestionsResponse {
	return &CategoryQuestionsResponse{
		Success:         true,
		Questions:       nonNil(questions),
		TotalQuestions:  total,
		CurrentCategory: category.Type,
	}
}

// nonNil гарантирует сериализацию пустого списка как [] вместо null
func nonNil(questions []entity.Question) []entity.Question {
	if questions == nil {
		return []entity.Question{}
	}
	return questions
}
