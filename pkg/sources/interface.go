package sources

import (
	"errors"

	"github.com/labible/sitemap/pkg/data"
)

var (
	// ErrNotFound is returned when the input collection does not exist.
	ErrNotFound = errors.New("input file not found")
	// ErrMalformed is returned when a record cannot be read as a verse.
	ErrMalformed = errors.New("malformed input")
)

// Source yields the verse collection in its original order.
type Source interface {
	Verses() ([]data.Verse, error)
}
