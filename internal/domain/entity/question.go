package entity

import "strings"

// Question представляет вопрос викторины
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   uint   `gorm:"not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsComplete проверяет, что все обязательные поля заполнены.
// Пустые строки (в том числе из одних пробелов) и нулевые значения считаются отсутствующими,
// сложность должна быть положительной.
func (q *Question) IsComplete() bool {
	return strings.TrimSpace(q.Question) != "" &&
		strings.TrimSpace(q.Answer) != "" &&
		q.Category != 0 &&
		q.Difficulty > 0
}

// InCategory проверяет принадлежность вопроса категории.
// AllCategories совпадает с любой категорией.
func (q *Question) InCategory(categoryID uint) bool {
	return categoryID == AllCategories || q.Category == categoryID
}
