package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yourusername/trivia-bank/internal/config"
	"github.com/yourusername/trivia-bank/internal/handler"
	"github.com/yourusername/trivia-bank/internal/middleware"
	pgRepo "github.com/yourusername/trivia-bank/internal/repository/postgres"
	"github.com/yourusername/trivia-bank/internal/service"
	"github.com/yourusername/trivia-bank/internal/service/quizmanager"
	"github.com/yourusername/trivia-bank/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := openDatabase(cfg)
	if err != nil {
		log.Printf("Failed to initialize database: %v", err)
		os.Exit(1)
	}

	// Redis нужен только для rate limiting; без него API работает без ограничений
	var rateLimit gin.HandlerFunc
	if cfg.Redis.Enabled {
		redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		log.Println("Successfully connected to Redis")

		limitCfg := middleware.DefaultAPIRateLimitConfig()
		if cfg.RateLimit.MaxRequests > 0 {
			limitCfg.MaxRequests = cfg.RateLimit.MaxRequests
		}
		if cfg.RateLimit.WindowSec > 0 {
			limitCfg.Window = time.Duration(cfg.RateLimit.WindowSec) * time.Second
		}
		rateLimit = middleware.NewRateLimiter(redisClient).LimitByIP(limitCfg)
	} else {
		log.Println("Redis отключен, rate limiting не применяется")
	}

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)

	// Инициализируем сервисы
	listOpts := service.ListOptions{
		PageSize:            cfg.API.QuestionsPerPage,
		EmptyResultNotFound: cfg.API.EmptyResultIsNotFound(),
	}
	questionService := service.NewQuestionService(questionRepo, categoryRepo, listOpts)
	categoryService := service.NewCategoryService(categoryRepo, listOpts)
	quizService := service.NewQuizService(questionRepo, quizmanager.NewDefaultSelector())

	// Инициализируем обработчики и роутер
	router := handler.NewRouter(handler.RouterDeps{
		QuestionHandler: handler.NewQuestionHandler(questionService),
		CategoryHandler: handler.NewCategoryHandler(categoryService, questionService),
		QuizHandler:     handler.NewQuizHandler(quizService),
		HealthHandler:   handler.NewHealthHandler(db),
		AllowedOrigin:   cfg.CORS.AllowedOrigin,
		RateLimit:       rateLimit,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if sqlDB, err := database.GetSQLDB(db); err == nil {
		sqlDB.Close()
	}

	log.Println("Server exited properly")
}

// openDatabase подключается к выбранному хранилищу и загружает начальную схему
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.IsSQLite() {
		log.Printf("Используется SQLite: %s", cfg.Database.SQLitePath)
		db, err := database.NewSQLiteDB(cfg.Database.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrateSQLite(db, database.DefaultCategories); err != nil {
			return nil, err
		}
		return db, nil
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		return nil, err
	}
	if err := database.MigrateDB(db, cfg.Database.MigrationsPath); err != nil {
		return nil, err
	}
	return db, nil
}
