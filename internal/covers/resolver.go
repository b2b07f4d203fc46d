// Package covers maps a book's ISBN onto a display-ready cover image URL.
package covers

import "strings"

const (
	// DefaultBaseURL is the Open Library covers endpoint.
	DefaultBaseURL = "https://covers.openlibrary.org/b/isbn"

	// DefaultPlaceholder is served for books without an ISBN.
	DefaultPlaceholder = "/images/no-cover.svg"

	// sizeSuffix selects the medium rendition from Open Library.
	sizeSuffix = "-M.jpg"
)

// Resolver builds cover image URLs from ISBNs. It never performs a network
// call and never fails: the URL is constructed, not fetched, and any
// non-empty ISBN string produces a URL. Whether the image actually exists
// is the browser's problem.
type Resolver struct {
	baseURL     string
	placeholder string
}

// NewResolver creates a resolver against the Open Library covers service.
func NewResolver() *Resolver {
	return &Resolver{
		baseURL:     DefaultBaseURL,
		placeholder: DefaultPlaceholder,
	}
}

// NewResolverWith creates a resolver with a custom covers endpoint and
// placeholder path. Empty arguments keep the defaults.
func NewResolverWith(baseURL, placeholder string) *Resolver {
	r := NewResolver()
	if baseURL != "" {
		r.baseURL = strings.TrimRight(baseURL, "/")
	}
	if placeholder != "" {
		r.placeholder = placeholder
	}
	return r
}

// Resolve returns the cover URL for an ISBN, or the placeholder when the
// ISBN is absent. The ISBN is not validated for format or checksum.
func (r *Resolver) Resolve(isbn string) string {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return r.placeholder
	}
	return r.baseURL + "/" + isbn + sizeSuffix
}

// ResolvePtr is Resolve for the nullable ISBN column on a book record.
func (r *Resolver) ResolvePtr(isbn *string) string {
	if isbn == nil {
		return r.placeholder
	}
	return r.Resolve(*isbn)
}
