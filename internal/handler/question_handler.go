package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-bank/internal/handler/dto"
	"github.com/yourusername/trivia-bank/internal/pkg/pagination"
	"github.com/yourusername/trivia-bank/internal/service"
)

// QuestionHandler обрабатывает запросы к банку вопросов
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// ListQuestions возвращает страницу вопросов вместе со всеми категориями
// GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page := pagination.ParsePage(c.Query("page"))

	result, err := h.questionService.ListPage(c.Request.Context(), page)
	if err != nil {
		handleServiceError(c, "QuestionHandler", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(result.Questions, result.Total, result.Categories))
}

// GetQuestion возвращает вопрос по ID
// GET /questions/:id
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)

	question, err := h.questionService.GetQuestion(c.Request.Context(), questionID)
	if err != nil {
		handleServiceError(c, "QuestionHandler", err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionResponse{Success: true, Question: question})
}

// CreateQuestion создает вопрос
// POST /questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[QuestionHandler] Некорректное тело запроса на создание: %v", err)
		respondError(c, http.StatusBadRequest)
		return
	}

	question, ok := req.ToEntity()
	if !ok {
		respondError(c, http.StatusBadRequest)
		return
	}

	firstPage, err := h.questionService.CreateQuestion(c.Request.Context(), question)
	if err != nil {
		handleServiceError(c, "QuestionHandler", err)
		return
	}

	c.JSON(http.StatusOK, dto.CreatedResponse{
		Success:   true,
		Created:   question.ID,
		Questions: firstPage,
	})
}

// DeleteQuestion удаляет вопрос и возвращает первую страницу оставшихся
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)

	remaining, err := h.questionService.DeleteQuestion(c.Request.Context(), questionID)
	if err != nil {
		handleServiceError(c, "QuestionHandler", err)
		return
	}

	c.JSON(http.StatusOK, dto.DeletedResponse{
		Success:   true,
		Deleted:   questionID,
		Questions: remaining,
	})
}

// SearchQuestions ищет вопросы по подстроке без учёта регистра
// POST /questions/search
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	questions, err := h.questionService.Search(c.Request.Context(), req.SearchTerm)
	if err != nil {
		handleServiceError(c, "QuestionHandler", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSearchResponse(questions))
}
