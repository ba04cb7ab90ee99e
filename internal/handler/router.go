package handler

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-bank/internal/middleware"
)

// RouterDeps содержит обработчики и настройки для сборки роутера
type RouterDeps struct {
	QuestionHandler *QuestionHandler
	CategoryHandler *CategoryHandler
	QuizHandler     *QuizHandler
	HealthHandler   *HealthHandler // опционально

	// AllowedOrigin — единственный origin фронтенда, которому разрешён CORS
	AllowedOrigin string
	// RateLimit — опциональный middleware ограничения частоты (nil — без ограничений)
	RateLimit gin.HandlerFunc
}

// NewRouter собирает gin.Engine со всеми маршрутами API
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.Default()
	router.HandleMethodNotAllowed = true
	router.NoRoute(NoRoute)
	router.NoMethod(NoMethod)

	router.Use(middleware.RequestID())

	// PATCH объявлен для совместимости с фронтендом, хотя эндпоинтов PATCH нет
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{deps.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if deps.HealthHandler != nil {
		router.GET("/health", deps.HealthHandler.Health)
	}

	api := router.Group("")
	if deps.RateLimit != nil {
		api.Use(deps.RateLimit)
	}

	// Категории
	categories := api.Group("/categories")
	{
		categories.GET("", deps.CategoryHandler.ListCategories)
		categories.GET("/:id/questions",
			middleware.ExtractUintParam("id", "categoryID"),
			deps.CategoryHandler.ListCategoryQuestions)
	}

	// Вопросы
	questions := api.Group("/questions")
	{
		questions.GET("", deps.QuestionHandler.ListQuestions)
		questions.POST("", deps.QuestionHandler.CreateQuestion)
		questions.POST("/search", deps.QuestionHandler.SearchQuestions)
		questions.GET("/export", deps.QuestionHandler.ExportQuestions)

		questionWithID := questions.Group("/:id")
		questionWithID.Use(middleware.ExtractUintParam("id", "questionID"))
		{
			questionWithID.GET("", deps.QuestionHandler.GetQuestion)
			questionWithID.DELETE("", deps.QuestionHandler.DeleteQuestion)
		}
	}

	// Режим игры
	api.POST("/quizzes", deps.QuizHandler.NextQuestion)

	return router
}
