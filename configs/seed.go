package configs

import (
	"github.com/1997mahesh/dfcorner/entity"
	"github.com/1997mahesh/dfcorner/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the first admin account when the users table is empty.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Name:     "Admin User",
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logger.L.WithField("email", admin.Email).Info("seeded admin user")
	return nil
}

// SeedCatalog populates the starter categories and menu items once.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []entity.Category{
		{Name: "Starters"},
		{Name: "Main Course"},
		{Name: "Desserts"},
		{Name: "Beverages"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	items := []entity.MenuItem{
		{CategoryID: categories[0].ID, Name: "Bruschetta", Price: 8.99, Description: "Toasted bread with tomatoes and basil", IsAvailable: true},
		{CategoryID: categories[1].ID, Name: "Truffle Pasta", Price: 18.50, Description: "Creamy pasta with black truffle oil", IsAvailable: true},
		{CategoryID: categories[2].ID, Name: "Tiramisu", Price: 7.50, Description: "Classic Italian dessert", IsAvailable: true},
		{CategoryID: categories[3].ID, Name: "Espresso", Price: 3.50, Description: "Strong Italian coffee", IsAvailable: true},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}
	logger.L.WithField("items", len(items)).Info("seeded starter catalog")
	return nil
}
