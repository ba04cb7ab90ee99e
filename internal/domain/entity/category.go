package entity

// AllCategories — служебный идентификатор категории, отключающий фильтр по категории
// (клиент присылает quiz_category.id = 0 для режима "все категории").
const AllCategories uint = 0

// Category представляет категорию вопросов. Заполняется при начальной загрузке схемы.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"type:text;not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}
