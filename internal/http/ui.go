package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/booklog-app/booklog/internal/covers"
	"github.com/booklog-app/booklog/internal/entities"
	"github.com/booklog-app/booklog/internal/session"
)

// displayDateLayout is how read dates are shown on the list and detail pages.
const displayDateLayout = "Jan 2, 2006"

// UIController serves the server-rendered pages: catalog listing, add and
// edit forms, detail view, and deletion.
type UIController struct {
	store    BookStore
	resolver *covers.Resolver
	sessions *session.Manager
}

func NewUIController(store BookStore, resolver *covers.Resolver, sessions *session.Manager) *UIController {
	return &UIController{
		store:    store,
		resolver: resolver,
		sessions: sessions,
	}
}

// BookView is a catalog record shaped for the HTML templates: dates are
// pre-formatted, absent optionals become empty strings, and the cover URL
// is already resolved.
type BookView struct {
	ID            uint
	Title         string
	Author        string
	ISBN          string
	Rating        *float64
	DateRead      string // display format, empty when unread
	DateReadValue string // YYYY-MM-DD, what a date input expects
	Notes         string
	CoverURL      string
}

func (controller *UIController) present(book entities.Book) BookView {
	view := BookView{
		ID:       book.ID,
		Title:    book.Title,
		Author:   book.Author,
		Rating:   book.Rating,
		CoverURL: controller.resolver.ResolvePtr(book.ISBN),
	}
	if book.ISBN != nil {
		view.ISBN = *book.ISBN
	}
	if book.Notes != nil {
		view.Notes = *book.Notes
	}
	if book.DateRead != nil {
		view.DateRead = book.DateRead.Format(displayDateLayout)
		view.DateReadValue = book.DateRead.Format(entities.DateLayout)
	}
	return view
}

// bookInputFromForm collects the submitted form fields. A blank rating is
// left absent rather than parsed as zero, matching how every other blank
// optional field is treated.
func bookInputFromForm(c *gin.Context) entities.BookInput {
	input := entities.BookInput{
		Title:    c.PostForm("title"),
		Author:   c.PostForm("author"),
		ISBN:     c.PostForm("isbn"),
		DateRead: c.PostForm("date_read"),
		Notes:    c.PostForm("notes"),
	}
	if raw := strings.TrimSpace(c.PostForm("rating")); raw != "" {
		if rating, err := strconv.ParseFloat(raw, 64); err == nil {
			input.Rating = &rating
		}
	}
	return input
}

// BooksPage renders the catalog. The ?sort= query wins and is remembered
// in the visitor's session; without it the remembered preference applies.
func (controller *UIController) BooksPage(c *gin.Context) {
	var mode entities.SortMode
	if raw := c.Query("sort"); raw != "" {
		mode = entities.ParseSortMode(raw)
		if controller.sessions != nil {
			controller.sessions.RememberSortMode(c.Request, mode)
		}
	} else if controller.sessions != nil {
		mode = controller.sessions.PreferredSortMode(c.Request)
	} else {
		mode = entities.SortRecency
	}

	catalog, err := controller.store.ListSorted(mode)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading books. Please try again.")
		return
	}

	books := make([]BookView, 0, len(catalog))
	for _, book := range catalog {
		books = append(books, controller.present(book))
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Books":      books,
		"TotalBooks": len(books),
		"SortBy":     string(mode),
		"Error":      c.Query("error"),
		"CSRFField":  csrfField(c),
	})
}

// AddPage renders the empty add-book form.
func (controller *UIController) AddPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add.html", gin.H{
		"Form":      entities.BookInput{},
		"CSRFField": csrfField(c),
	})
}

// CreateBook handles the add-book form submission.
func (controller *UIController) CreateBook(c *gin.Context) {
	input := bookInputFromForm(c)

	if _, err := controller.store.Create(input); err != nil {
		if verr, ok := entities.IsValidationError(err); ok {
			c.HTML(http.StatusBadRequest, "add.html", gin.H{
				"Form":      input,
				"Errors":    verr.Fields,
				"CSRFField": csrfField(c),
			})
			return
		}
		c.String(http.StatusInternalServerError, "Error adding book. Please try again.")
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// EditPage renders the edit form pre-filled with the stored record. The
// read date round-trips through the YYYY-MM-DD layout the date input needs.
func (controller *UIController) EditPage(c *gin.Context) {
	id, ok := parseUIID(c)
	if !ok {
		return
	}

	book, err := controller.store.GetByID(id)
	if err != nil {
		if errors.Is(err, entities.ErrBookNotFound) {
			c.String(http.StatusNotFound, "Book not found.")
			return
		}
		c.String(http.StatusInternalServerError, "Error loading book. Please try again.")
		return
	}

	c.HTML(http.StatusOK, "edit.html", gin.H{
		"Book":      controller.present(*book),
		"CSRFField": csrfField(c),
	})
}

// UpdateBook handles the edit form submission, overwriting every field.
func (controller *UIController) UpdateBook(c *gin.Context) {
	id, ok := parseUIID(c)
	if !ok {
		return
	}

	input := bookInputFromForm(c)

	if err := controller.store.Update(id, input); err != nil {
		if verr, ok := entities.IsValidationError(err); ok {
			view := BookView{
				ID:            id,
				Title:         input.Title,
				Author:        input.Author,
				ISBN:          input.ISBN,
				Rating:        input.Rating,
				DateReadValue: input.DateRead,
				Notes:         input.Notes,
			}
			c.HTML(http.StatusBadRequest, "edit.html", gin.H{
				"Book":      view,
				"Errors":    verr.Fields,
				"CSRFField": csrfField(c),
			})
			return
		}
		if errors.Is(err, entities.ErrBookNotFound) {
			c.String(http.StatusNotFound, "Book not found.")
			return
		}
		c.String(http.StatusInternalServerError, "Error updating book. Please try again.")
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// DeleteBook removes a record and returns to the catalog. A missing id is
// a silent no-op, so double submits never surface an error.
func (controller *UIController) DeleteBook(c *gin.Context) {
	id, ok := parseUIID(c)
	if !ok {
		return
	}

	if err := controller.store.Delete(id); err != nil {
		c.String(http.StatusInternalServerError, "Error deleting book. Please try again.")
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// BookPage renders the full details of a single book.
func (controller *UIController) BookPage(c *gin.Context) {
	id, ok := parseUIID(c)
	if !ok {
		return
	}

	book, err := controller.store.GetByID(id)
	if err != nil {
		if errors.Is(err, entities.ErrBookNotFound) {
			c.String(http.StatusNotFound, "Book not found.")
			return
		}
		c.String(http.StatusInternalServerError, "Error loading book details. Please try again.")
		return
	}

	c.HTML(http.StatusOK, "book.html", gin.H{
		"Book":      controller.present(*book),
		"CSRFField": csrfField(c),
	})
}

// parseUIID parses the :id route parameter for the HTML pages, answering
// with a plain-text 400 rather than JSON.
func parseUIID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid book ID")
		return 0, false
	}
	return uint(id), true
}
