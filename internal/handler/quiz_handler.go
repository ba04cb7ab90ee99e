package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-bank/internal/handler/dto"
	"github.com/yourusername/trivia-bank/internal/service"
)

// QuizHandler обрабатывает запросы режима игры
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// NextQuestion возвращает случайный ещё не заданный вопрос выбранной категории.
// question = null при success = true означает, что вопросы закончились.
// POST /quizzes
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req dto.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[QuizHandler] Некорректное тело запроса: %v", err)
		respondError(c, http.StatusBadRequest)
		return
	}

	if req.QuizCategory == nil {
		handleServiceError(c, "QuizHandler", service.ErrMissingQuizCategory)
		return
	}
	categoryID, ok := req.QuizCategory.ID.Uint()
	if !ok {
		respondError(c, http.StatusBadRequest)
		return
	}

	question, err := h.quizService.NextQuestion(c.Request.Context(), categoryID, req.PreviousQuestions)
	if err != nil {
		handleServiceError(c, "QuizHandler", err)
		return
	}

	c.JSON(http.StatusOK, dto.QuizResponse{Success: true, Question: question})
}
