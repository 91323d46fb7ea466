package services

import (
	"testing"

	"github.com/1997mahesh/dfcorner/configs"
	"github.com/1997mahesh/dfcorner/entity"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openTestDB gives each test an isolated in-memory store with foreign keys
// enforced, same as production.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second pooled connection would see its own empty :memory: database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, configs.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email, password, role string) *entity.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	u := &entity.User{Name: name, Email: email, Password: string(hash), Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createCatalog(t *testing.T, db *gorm.DB) (entity.Category, []entity.MenuItem) {
	t.Helper()

	cat := entity.Category{Name: "Main Course"}
	require.NoError(t, db.Create(&cat).Error)

	items := []entity.MenuItem{
		{CategoryID: cat.ID, Name: "Truffle Pasta", Price: 18.50, IsAvailable: true},
		{CategoryID: cat.ID, Name: "Bruschetta", Price: 8.99, IsAvailable: true},
	}
	require.NoError(t, db.Create(&items).Error)
	return cat, items
}
