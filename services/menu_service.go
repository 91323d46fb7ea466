package services

import (
	"github.com/1997mahesh/dfcorner/entity"
	"github.com/1997mahesh/dfcorner/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuView struct {
	Items      []repository.MenuItemView `json:"items"`
	Categories []entity.Category         `json:"categories"`
}

// GetMenu recomputes the full menu on every call; no availability filter,
// no pagination.
func (s *MenuService) GetMenu() (*MenuView, error) {
	items, err := s.Repo.ListItemsWithCategory()
	if err != nil {
		return nil, err
	}
	categories, err := s.Repo.ListCategories()
	if err != nil {
		return nil, err
	}
	return &MenuView{Items: items, Categories: categories}, nil
}
