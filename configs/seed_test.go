package configs

import (
	"testing"
	"time"

	"github.com/1997mahesh/dfcorner/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Migrate(db))
	return db
}

func testConfig() *Config {
	return &Config{
		JWTSecret:     "test-secret",
		JWTTTL:        time.Hour,
		AdminEmail:    "admin@gusto.com",
		AdminPassword: "admin123",
	}
}

func TestSeedAdminOnceOnly(t *testing.T) {
	db := openTestDB(t)
	cfg := testConfig()

	require.NoError(t, SeedAdmin(db, cfg))
	require.NoError(t, SeedAdmin(db, cfg))

	var users []entity.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "admin@gusto.com", users[0].Email)
	assert.Equal(t, "admin", users[0].Role)

	// password is stored hashed, not plaintext
	assert.NotEqual(t, "admin123", users[0].Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte("admin123")))
}

func TestSeedAdminSkipsNonEmptyStore(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Create(&entity.User{Name: "Existing", Email: "x@y.z", Password: "hash", Role: "customer"}).Error)
	require.NoError(t, SeedAdmin(db, testConfig()))

	var count int64
	require.NoError(t, db.Model(&entity.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSeedCatalog(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, SeedCatalog(db))
	require.NoError(t, SeedCatalog(db))

	var categories []entity.Category
	var items []entity.MenuItem
	require.NoError(t, db.Order("id").Find(&categories).Error)
	require.NoError(t, db.Order("id").Find(&items).Error)

	require.Len(t, categories, 4)
	require.Len(t, items, 4)
	assert.Equal(t, "Starters", categories[0].Name)
	assert.Equal(t, "Bruschetta", items[0].Name)
	assert.Equal(t, 8.99, items[0].Price)
	assert.Equal(t, categories[0].ID, items[0].CategoryID)
	assert.True(t, items[0].IsAvailable)
}
