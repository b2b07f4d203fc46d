package http

import (
	"html/template"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/booklog-app/booklog/internal/covers"
	"github.com/booklog-app/booklog/internal/database"
	"github.com/booklog-app/booklog/internal/security"
	"github.com/booklog-app/booklog/internal/session"
)

// RouterConfig contains all dependencies and configuration needed to
// create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Store    BookStore
	Resolver *covers.Resolver
	Database *database.Database

	// Visitor sessions (sort preference); optional
	Sessions *session.Manager

	// CSRF protection for form posts; disabled when the secret is empty
	CSRFSecret    []byte
	SecureCookies bool

	// UI paths
	TemplatesPath string
	StaticPath    string

	// Application info
	Version string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(security.HeadersMiddleware())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(security.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	if cfg.Sessions != nil {
		router.Use(cfg.Sessions.LoadSave())
	}

	// Load HTML templates
	tmpl := template.Must(template.ParseGlob(filepath.Join(cfg.TemplatesPath, "*.html")))
	router.SetHTMLTemplate(tmpl)

	// Serve static files; the cover placeholder lives under /images
	router.Static("/static", cfg.StaticPath)
	router.Static("/images", filepath.Join(cfg.StaticPath, "images"))

	// Create controllers
	health := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.Store, cfg.Resolver)
	uiController := NewUIController(cfg.Store, cfg.Resolver, cfg.Sessions)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Books API endpoints
	router.GET("/api/books", booksController.ListBooks)
	router.GET("/api/books/stats", booksController.GetBookStats)
	router.GET("/api/books/:id", booksController.GetBook)
	router.POST("/api/books", booksController.CreateBook)
	router.PUT("/api/books/:id", booksController.UpdateBook)
	router.DELETE("/api/books/:id", booksController.DeleteBook)

	// UI routes
	router.GET("/", uiController.BooksPage)
	router.GET("/add", uiController.AddPage)
	router.POST("/add", uiController.CreateBook)
	router.GET("/edit/:id", uiController.EditPage)
	router.POST("/edit/:id", uiController.UpdateBook)
	router.POST("/delete/:id", uiController.DeleteBook)
	router.GET("/book/:id", uiController.BookPage)

	return router
}
