package repository

import (
	"github.com/1997mahesh/dfcorner/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// MenuItemView is a menu item annotated with its category's display name.
type MenuItemView struct {
	ID           uint    `json:"id"`
	CategoryID   uint    `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	IsAvailable  bool    `json:"isAvailable"`
}

// ListItemsWithCategory inner-joins menu_items with categories; items whose
// category row is gone drop out of the result rather than erroring.
func (r *MenuRepository) ListItemsWithCategory() ([]MenuItemView, error) {
	var out []MenuItemView
	err := r.DB.Model(&entity.MenuItem{}).
		Select("menu_items.id, menu_items.category_id, categories.name AS category_name, menu_items.name, menu_items.description, menu_items.price, menu_items.image, menu_items.is_available").
		Joins("JOIN categories ON categories.id = menu_items.category_id AND categories.deleted_at IS NULL").
		Order("menu_items.id").
		Scan(&out).Error
	return out, err
}

func (r *MenuRepository) ListCategories() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}
