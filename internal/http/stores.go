package http

import "github.com/booklog-app/booklog/internal/entities"

// BookStore is the catalog contract consumed by the HTTP controllers.
// internal/database/books.Repository is the production implementation.
type BookStore interface {
	Create(input entities.BookInput) (*entities.Book, error)
	GetByID(id uint) (*entities.Book, error)
	ListSorted(mode entities.SortMode) ([]entities.Book, error)
	Update(id uint, input entities.BookInput) error
	Delete(id uint) error
	Count() (int64, error)
}
