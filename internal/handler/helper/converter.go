package helper

import (
	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// CategoriesToMap преобразует список категорий в объект {id: type}, который ожидает фронтенд
func CategoriesToMap(categories []entity.Category) map[uint]string {
	formatted := make(map[uint]string, len(categories))
	for _, c := range categories {
		formatted[c.ID] = c.Type
	}
	return formatted
}

// SanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func SanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
