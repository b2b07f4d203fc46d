// Package books provides the catalog store: database operations over the
// persisted collection of reading-log entries.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetByID(123)
package books

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/booklog-app/booklog/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// sortClauses maps each sort mode onto its ORDER BY clause. In SQLite a
// boolean expression sorts false before true, so "<col> IS NULL" pushes
// rows without a value after every row that has one.
var sortClauses = map[entities.SortMode]string{
	entities.SortTitle:   "title ASC",
	entities.SortRating:  "rating IS NULL, rating DESC, title ASC",
	entities.SortRecency: "date_read IS NULL, date_read DESC, created_at DESC",
}

// Create validates and persists a new book, returning the stored record
// with its assigned id and timestamps. Nothing is persisted when
// validation fails.
func (r *Repository) Create(input entities.BookInput) (*entities.Book, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	book := input.Record()
	if err := r.db.Create(&book).Error; err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return &book, nil
}

// GetByID retrieves a book by its id, or entities.ErrBookNotFound.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}
	return &book, nil
}

// ListSorted returns the full catalog ordered by the given sort mode.
// Callers are expected to have normalized the mode with ParseSortMode;
// an unknown value still degrades to the recency ordering here.
func (r *Repository) ListSorted(mode entities.SortMode) ([]entities.Book, error) {
	clause, ok := sortClauses[mode]
	if !ok {
		clause = sortClauses[entities.SortRecency]
	}

	var catalog []entities.Book
	if err := r.db.Order(clause).Find(&catalog).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return catalog, nil
}

// Update overwrites every user-supplied field of an existing book.
// This is full-replace, not a sparse patch: optional fields omitted from
// the input are written back as NULL. GORM refreshes updated_at as part
// of the statement.
func (r *Repository) Update(id uint, input entities.BookInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	record := input.Record()
	result := r.db.Model(&entities.Book{}).Where("id = ?", id).Updates(map[string]any{
		"title":     record.Title,
		"author":    record.Author,
		"isbn":      record.ISBN,
		"rating":    record.Rating,
		"date_read": record.DateRead,
		"notes":     record.Notes,
	})
	if result.Error != nil {
		return fmt.Errorf("update book %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrBookNotFound
	}
	return nil
}

// Delete permanently removes a book. Deleting an id that does not exist
// is a no-op, never an error.
func (r *Repository) Delete(id uint) error {
	if err := r.db.Delete(&entities.Book{}, id).Error; err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	return nil
}

// Count returns the number of books in the catalog.
func (r *Repository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&entities.Book{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return total, nil
}
