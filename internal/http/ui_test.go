package http

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/booklog-app/booklog/internal/covers"
	"github.com/booklog-app/booklog/internal/database/books"
	"github.com/booklog-app/booklog/internal/entities"
)

// uiTestTemplates is a minimal template set exposing the data the real
// pages render, so tests can assert on content without the full markup.
func uiTestTemplates() *template.Template {
	root := template.New("")
	template.Must(root.New("index.html").Parse(`sort={{.SortBy}};{{range .Books}}{{.Title}}|{{end}}`))
	template.Must(root.New("add.html").Parse(`add;{{range $field, $msg := .Errors}}{{$field}}:{{$msg}};{{end}}`))
	template.Must(root.New("edit.html").Parse(`edit;title={{.Book.Title}};date={{.Book.DateReadValue}};{{range $field, $msg := .Errors}}{{$field}}:{{$msg}};{{end}}`))
	template.Must(root.New("book.html").Parse(`book;{{.Book.Title}};{{.Book.CoverURL}}`))
	return root
}

func setupUI(t *testing.T) (*gin.Engine, *books.Repository, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_ui_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Book{}))

	repo := books.NewRepository(db)
	controller := NewUIController(repo, covers.NewResolver(), nil)

	router := gin.New()
	router.SetHTMLTemplate(uiTestTemplates())
	router.GET("/", controller.BooksPage)
	router.GET("/add", controller.AddPage)
	router.POST("/add", controller.CreateBook)
	router.GET("/edit/:id", controller.EditPage)
	router.POST("/edit/:id", controller.UpdateBook)
	router.POST("/delete/:id", controller.DeleteBook)
	router.GET("/book/:id", controller.BookPage)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return router, repo, cleanup
}

func doForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func TestUIController_BooksPage(t *testing.T) {
	router, repo, cleanup := setupUI(t)
	defer cleanup()

	_, err := repo.Create(entities.BookInput{Title: "Neuromancer", Author: "Gibson"})
	require.NoError(t, err)
	_, err = repo.Create(entities.BookInput{Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)

	t.Run("renders the catalog with the requested sort", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/?sort=title", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "sort=title;Dune|Neuromancer|", w.Body.String())
	})

	t.Run("defaults to recency without a sort query", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "sort=recency;")
	})

	t.Run("unknown sort is treated as recency", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/?sort=shuffle", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "sort=recency;")
	})
}

func TestUIController_CreateBook(t *testing.T) {
	t.Run("valid form redirects to the catalog", func(t *testing.T) {
		router, repo, cleanup := setupUI(t)
		defer cleanup()

		w := doForm(router, "/add", url.Values{
			"title":  {"Dune"},
			"author": {"Herbert"},
			"rating": {"5"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		catalog, err := repo.ListSorted(entities.SortRecency)
		require.NoError(t, err)
		require.Len(t, catalog, 1)
		require.NotNil(t, catalog[0].Rating)
		assert.Equal(t, 5.0, *catalog[0].Rating)
	})

	t.Run("blank rating stays absent", func(t *testing.T) {
		router, repo, cleanup := setupUI(t)
		defer cleanup()

		w := doForm(router, "/add", url.Values{
			"title":  {"Dune"},
			"author": {"Herbert"},
			"rating": {""},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)

		catalog, err := repo.ListSorted(entities.SortRecency)
		require.NoError(t, err)
		require.Len(t, catalog, 1)
		assert.Nil(t, catalog[0].Rating)
	})

	t.Run("missing author re-renders the form with errors", func(t *testing.T) {
		router, repo, cleanup := setupUI(t)
		defer cleanup()

		w := doForm(router, "/add", url.Values{"title": {"Dune"}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "author:must be provided")

		total, err := repo.Count()
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}

func TestUIController_EditPage(t *testing.T) {
	router, repo, cleanup := setupUI(t)
	defer cleanup()

	created, err := repo.Create(entities.BookInput{Title: "Dune", Author: "Herbert", DateRead: "2025-01-15"})
	require.NoError(t, err)
	_ = created

	t.Run("read date round-trips in the date input format", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/edit/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "date=2025-01-15")
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/edit/99999", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUIController_UpdateBook(t *testing.T) {
	router, repo, cleanup := setupUI(t)
	defer cleanup()

	_, err := repo.Create(entities.BookInput{Title: "Dune", Author: "Herbert", Notes: "keep?"})
	require.NoError(t, err)

	t.Run("overwrites all fields and redirects", func(t *testing.T) {
		w := doForm(router, "/edit/1", url.Values{
			"title":  {"Dune"},
			"author": {"Frank Herbert"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)

		stored, err := repo.GetByID(1)
		require.NoError(t, err)
		assert.Equal(t, "Frank Herbert", stored.Author)
		// Full-replace semantics: omitted notes were cleared.
		assert.Nil(t, stored.Notes)
	})

	t.Run("validation failure re-renders the edit form", func(t *testing.T) {
		w := doForm(router, "/edit/1", url.Values{"title": {""}, "author": {"Herbert"}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "title:must be provided")
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		w := doForm(router, "/edit/99999", url.Values{"title": {"Dune"}, "author": {"Herbert"}})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUIController_DeleteBook(t *testing.T) {
	router, repo, cleanup := setupUI(t)
	defer cleanup()

	_, err := repo.Create(entities.BookInput{Title: "Dune", Author: "Herbert"})
	require.NoError(t, err)

	w := doForm(router, "/delete/1", url.Values{})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	// Deleting again is still a redirect, not an error.
	w = doForm(router, "/delete/1", url.Values{})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	total, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestUIController_BookPage(t *testing.T) {
	router, repo, cleanup := setupUI(t)
	defer cleanup()

	_, err := repo.Create(entities.BookInput{Title: "Dune", Author: "Herbert", ISBN: "9780441172719"})
	require.NoError(t, err)

	t.Run("renders the detail page with the resolved cover", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/book/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "https://covers.openlibrary.org/b/isbn/9780441172719-M.jpg")
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/book/99999", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
