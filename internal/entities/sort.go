package entities

// SortMode selects the ordering applied when listing the catalog.
type SortMode string

const (
	// SortRecency orders by date read, newest first, unread books last.
	SortRecency SortMode = "recency"
	// SortRating orders by rating, highest first, unrated books last.
	SortRating SortMode = "rating"
	// SortTitle orders alphabetically by title.
	SortTitle SortMode = "title"
)

// ParseSortMode maps a raw query value onto a recognized sort mode.
// Anything unrecognized falls back to recency; it is never an error.
func ParseSortMode(raw string) SortMode {
	switch SortMode(raw) {
	case SortRating:
		return SortRating
	case SortTitle:
		return SortTitle
	default:
		return SortRecency
	}
}
