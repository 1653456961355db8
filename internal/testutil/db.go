package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/readinglist/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory sqlite database with the books table
// created.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := NewEmptyDB(t)
	if err := db.AutoMigrate(&model.Book{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// NewEmptyDB opens a private in-memory sqlite database without any tables,
// so every query against it fails.
func NewEmptyDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// SeedBook inserts a valid book with the given title and creation time.
func SeedBook(t *testing.T, db *gorm.DB, title, author string, createdAt time.Time) model.Book {
	t.Helper()

	book := model.Book{
		Title:     title,
		Author:    author,
		Genre:     model.DefaultGenre,
		Rating:    model.DefaultRating,
		Status:    model.StatusWantToRead,
		CreatedAt: createdAt,
	}

	if err := db.Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}

	return book
}
