package entities

import (
	"errors"
	"sort"
	"strings"
)

// ErrBookNotFound is returned when an operation targets an id that has no
// persisted record. Callers match it with errors.Is.
var ErrBookNotFound = errors.New("book not found")

// ValidationError reports one or more rejected input fields. The catalog
// never persists anything when validation fails.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid book input"
	}

	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+" "+e.Fields[key])
	}
	return "invalid book input: " + strings.Join(parts, "; ")
}

// IsValidationError reports whether err is a ValidationError and returns it.
func IsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
