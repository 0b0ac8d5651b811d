package integrations

import (
	"io"

	"github.com/labible/sitemap/pkg/data"
)

// Renderer turns an ordered list of entries into a document.
type Renderer interface {
	Render(w io.Writer, entries []data.URLEntry) error
}
