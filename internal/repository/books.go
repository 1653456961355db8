package repository

import (
	"context"
	"errors"

	"github.com/snnyvrz/readinglist/internal/model"
	"gorm.io/gorm"
)

type BookRepository interface {
	List(ctx context.Context) ([]model.Book, error)
	Create(ctx context.Context, book *model.Book) error
	UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) List(ctx context.Context) ([]model.Book, error) {
	books := make([]model.Book, 0)
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&books).Error; err != nil {

		return nil, classify("list books", err)
	}
	return books, nil
}

// Create inserts the book and fills in the generated ID and CreatedAt.
func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	if err := book.Validate(); err != nil {
		return invalid("create book", err)
	}

	book.ID = 0
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return classify("create book", err)
	}
	return nil
}

// UpdateStatus changes only the status column of the book with the given id.
func (r *GormBookRepository) UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.Book, error) {
	probe := model.Book{Status: status}
	if err := model.Validator().StructPartial(&probe, "Status"); err != nil {
		return nil, invalid("update book status", err)
	}

	var book model.Book
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Book{}).
			Where("id = ?", id).
			Update("status", status)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&book, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("update book status")
		}
		return nil, classify("update book status", err)
	}
	return &book, nil
}

// Delete removes the book with the given id. Deleting a missing book is not
// an error.
func (r *GormBookRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&model.Book{}, "id = ?", id).Error; err != nil {
		return classify("delete book", err)
	}
	return nil
}
