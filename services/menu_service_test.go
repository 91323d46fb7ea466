package services

import (
	"testing"

	"github.com/1997mahesh/dfcorner/entity"
	"github.com/1997mahesh/dfcorner/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMenuAnnotatesCategoryNames(t *testing.T) {
	db := openTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))

	starters := entity.Category{Name: "Starters"}
	drinks := entity.Category{Name: "Beverages"}
	require.NoError(t, db.Create(&starters).Error)
	require.NoError(t, db.Create(&drinks).Error)
	require.NoError(t, db.Create(&entity.MenuItem{CategoryID: starters.ID, Name: "Bruschetta", Price: 8.99, IsAvailable: true}).Error)
	require.NoError(t, db.Create(&entity.MenuItem{CategoryID: drinks.ID, Name: "Espresso", Price: 3.50, IsAvailable: true}).Error)

	view, err := svc.GetMenu()
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	require.Len(t, view.Categories, 2)

	byName := map[string]string{}
	for _, it := range view.Items {
		byName[it.Name] = it.CategoryName
	}
	assert.Equal(t, "Starters", byName["Bruschetta"])
	assert.Equal(t, "Beverages", byName["Espresso"])
}

func TestGetMenuDoesNotFilterUnavailableItems(t *testing.T) {
	db := openTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))

	cat := entity.Category{Name: "Desserts"}
	require.NoError(t, db.Create(&cat).Error)
	require.NoError(t, db.Create(&entity.MenuItem{CategoryID: cat.ID, Name: "Tiramisu", Price: 7.50, IsAvailable: true}).Error)
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("name = ?", "Tiramisu").Update("is_available", false).Error)

	view, err := svc.GetMenu()
	require.NoError(t, err)
	// the flag is stored but the menu never filters on it
	require.Len(t, view.Items, 1)
	assert.False(t, view.Items[0].IsAvailable)
}

func TestGetMenuExcludesItemsOfDeletedCategory(t *testing.T) {
	db := openTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db))

	kept := entity.Category{Name: "Starters"}
	gone := entity.Category{Name: "Seasonal"}
	require.NoError(t, db.Create(&kept).Error)
	require.NoError(t, db.Create(&gone).Error)
	require.NoError(t, db.Create(&entity.MenuItem{CategoryID: kept.ID, Name: "Bruschetta", Price: 8.99, IsAvailable: true}).Error)
	require.NoError(t, db.Create(&entity.MenuItem{CategoryID: gone.ID, Name: "Pumpkin Soup", Price: 6.00, IsAvailable: true}).Error)

	require.NoError(t, db.Delete(&gone).Error)

	view, err := svc.GetMenu()
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Bruschetta", view.Items[0].Name)
	require.Len(t, view.Categories, 1)
	assert.Equal(t, "Starters", view.Categories[0].Name)
}
