package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-bank/internal/handler/dto"
	"github.com/yourusername/trivia-bank/internal/handler/helper"
	"github.com/yourusername/trivia-bank/internal/pkg/pagination"
	"github.com/yourusername/trivia-bank/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(categoryService *service.CategoryService, questionService *service.QuestionService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
	}
}

// ListCategories возвращает все категории в виде {id: type}
// GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		handleServiceError(c, "CategoryHandler", err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Success:    true,
		Categories: helper.CategoriesToMap(categories),
	})
}

// ListCategoryQuestions возвращает страницу вопросов категории
// GET /categories/:id/questions?page=N
func (h *CategoryHandler) ListCategoryQuestions(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint)
	page := pagination.ParsePage(c.Query("page"))

	result, err := h.questionService.ListByCategory(c.Request.Context(), categoryID, page)
	if err != nil {
		handleServiceError(c, "CategoryHandler", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryQuestionsResponse(result.Category, result.Questions, result.Total))
}
