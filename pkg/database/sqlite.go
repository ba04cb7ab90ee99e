package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// DefaultCategories — набор категорий начальной загрузки (совпадает с migrations/000002)
var DefaultCategories = []entity.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

// NewSQLiteDB открывает SQLite базу (локальная разработка и тесты).
// Для ":memory:" пул ограничен одним соединением, иначе каждое соединение видит свою пустую базу.
func NewSQLiteDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// AutoMigrateSQLite создает таблицы по моделям и засевает категории, если их ещё нет
func AutoMigrateSQLite(db *gorm.DB, categories []entity.Category) error {
	if err := db.AutoMigrate(&entity.Category{}, &entity.Question{}); err != nil {
		return fmt.Errorf("failed to automigrate sqlite schema: %w", err)
	}

	var count int64
	if err := db.Model(&entity.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 || len(categories) == 0 {
		return nil
	}
	seed := append([]entity.Category(nil), categories...)
	return db.Create(&seed).Error
}
