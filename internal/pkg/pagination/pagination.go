// Package pagination режет упорядоченные списки на страницы фиксированного размера.
package pagination

import "strconv"

// DefaultPageSize — размер страницы по умолчанию
const DefaultPageSize = 10

// Paginate возвращает страницу page (нумерация с 1) размера size.
// Страница за пределами списка — пустой слайс, а не ошибка: решение о 404 принимает вызывающий код.
// page < 1 трактуется как 1, size < 1 как DefaultPageSize.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}

	// Сравниваем номер страницы до умножения: (page-1)*size переполняет int
	pages := len(items) / size
	if len(items)%size != 0 {
		pages++
	}
	if page-1 >= pages {
		return []T{}
	}
	start := (page - 1) * size
	end := len(items)
	if size < end-start {
		end = start + size
	}
	return items[start:end]
}

// ParsePage разбирает query-параметр page.
// Отсутствующее, нечисловое или меньшее 1 значение даёт первую страницу.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
