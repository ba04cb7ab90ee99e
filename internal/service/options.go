package service

import "github.com/yourusername/trivia-bank/internal/pkg/pagination"

// ListOptions задаёт размер страницы и политику пустых выборок для списочных методов
type ListOptions struct {
	PageSize int
	// EmptyResultNotFound: пустой список (или страница за пределами списка) возвращается как ErrNotFound.
	// false — пустой список считается успешным ответом.
	EmptyResultNotFound bool
}

// DefaultListOptions возвращает настройки по умолчанию: 10 на страницу, пустой список = 404
func DefaultListOptions() ListOptions {
	return ListOptions{
		PageSize:            pagination.DefaultPageSize,
		EmptyResultNotFound: true,
	}
}

func (o ListOptions) pageSize() int {
	if o.PageSize < 1 {
		return pagination.DefaultPageSize
	}
	return o.PageSize
}
