package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/booklog-app/booklog/internal/covers"
	"github.com/booklog-app/booklog/internal/entities"
)

// BooksController serves the JSON API over the catalog.
type BooksController struct {
	store    BookStore
	resolver *covers.Resolver
}

func NewBooksController(store BookStore, resolver *covers.Resolver) *BooksController {
	return &BooksController{
		store:    store,
		resolver: resolver,
	}
}

// BookResponse is a catalog record plus its resolved cover URL. Every book
// leaving the API carries a usable image reference.
type BookResponse struct {
	entities.Book
	CoverURL string `json:"cover_url"`
}

func (controller *BooksController) present(book entities.Book) BookResponse {
	return BookResponse{
		Book:     book,
		CoverURL: controller.resolver.ResolvePtr(book.ISBN),
	}
}

// ListBooks returns the full catalog, ordered by the ?sort= query value.
// Unrecognized sort values fall back to recency.
func (controller *BooksController) ListBooks(c *gin.Context) {
	mode := entities.ParseSortMode(c.Query("sort"))

	catalog, err := controller.store.ListSorted(mode)
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}

	books := make([]BookResponse, 0, len(catalog))
	for _, book := range catalog {
		books = append(books, controller.present(book))
	}

	c.JSON(http.StatusOK, gin.H{"books": books, "count": len(books), "sort": mode})
}

// GetBook returns a single catalog record by id.
func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.store.GetByID(id)
	if err != nil {
		respondStoreError(c, err, "get book")
		return
	}

	c.JSON(http.StatusOK, controller.present(*book))
}

// CreateBook persists a new catalog record from a JSON body.
func (controller *BooksController) CreateBook(c *gin.Context) {
	var input entities.BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid JSON body")
		return
	}

	book, err := controller.store.Create(input)
	if err != nil {
		respondStoreError(c, err, "create book")
		return
	}

	respondCreated(c, controller.present(*book))
}

// UpdateBook overwrites an existing record with the supplied field set.
func (controller *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input entities.BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid JSON body")
		return
	}

	if err := controller.store.Update(id, input); err != nil {
		respondStoreError(c, err, "update book")
		return
	}

	book, err := controller.store.GetByID(id)
	if err != nil {
		respondStoreError(c, err, "get updated book")
		return
	}

	c.JSON(http.StatusOK, controller.present(*book))
}

// DeleteBook removes a record. Deleting an unknown id still succeeds.
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.Delete(id); err != nil {
		respondInternalError(c, err, "delete book")
		return
	}

	respondSuccess(c, "book deleted")
}

// GetBookStats reports catalog totals.
func (controller *BooksController) GetBookStats(c *gin.Context) {
	total, err := controller.store.Count()
	if err != nil {
		respondInternalError(c, err, "book stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_books": total})
}
