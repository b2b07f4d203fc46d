package entities

import (
	"strings"
	"time"

	"github.com/booklog-app/booklog/internal/validator"
)

// DateLayout is the wire format for read dates, matching HTML date inputs.
const DateLayout = "2006-01-02"

// Book is a single entry in the reading log.
//
// Optional fields are pointers so that a missing value is stored as NULL
// and stays distinguishable from an empty string or zero. Sorting relies
// on that distinction ("unread last", "unrated last").
type Book struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"index;size:512" json:"title"`
	Author    string     `gorm:"index;size:256" json:"author"`
	ISBN      *string    `gorm:"size:20" json:"isbn,omitempty"`
	Rating    *float64   `json:"rating,omitempty"`
	DateRead  *time.Time `json:"date_read,omitempty"`
	Notes     *string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

// BookInput is the candidate record accepted on create and update.
// DateRead uses the YYYY-MM-DD layout produced by date form fields.
type BookInput struct {
	Title    string   `json:"title" form:"title"`
	Author   string   `json:"author" form:"author"`
	ISBN     string   `json:"isbn" form:"isbn"`
	Rating   *float64 `json:"rating" form:"rating"`
	DateRead string   `json:"date_read" form:"date_read"`
	Notes    string   `json:"notes" form:"notes"`
}

// Validate checks the input and returns a ValidationError listing every
// failing field, or nil when the input is acceptable. Rating range is
// deliberately not enforced here; that is caller policy.
func (in BookInput) Validate() error {
	v := validator.New()

	v.Check(strings.TrimSpace(in.Title) != "", "title", "must be provided")
	v.Check(strings.TrimSpace(in.Author) != "", "author", "must be provided")

	if strings.TrimSpace(in.DateRead) != "" {
		_, err := time.Parse(DateLayout, strings.TrimSpace(in.DateRead))
		v.Check(err == nil, "date_read", "must be a date in YYYY-MM-DD format")
	}

	if v.Valid() {
		return nil
	}
	return &ValidationError{Fields: v.Errors}
}

// Record converts validated input into a Book ready for persistence.
// Optional fields left blank are coerced to NULL here, in one place, so
// create and update cannot drift in how they normalize absent values.
func (in BookInput) Record() Book {
	book := Book{
		Title:  strings.TrimSpace(in.Title),
		Author: strings.TrimSpace(in.Author),
		ISBN:   nullableString(in.ISBN),
		Rating: in.Rating,
		Notes:  nullableString(in.Notes),
	}

	if dateRead := strings.TrimSpace(in.DateRead); dateRead != "" {
		if parsed, err := time.Parse(DateLayout, dateRead); err == nil {
			book.DateRead = &parsed
		}
	}

	return book
}

// nullableString returns nil for blank strings so they persist as NULL.
func nullableString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
