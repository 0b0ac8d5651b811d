package services

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/labible/sitemap/pkg/data"
	"github.com/labible/sitemap/pkg/utils"
)

const (
	ChapterChangeFreq = data.Weekly
	ChapterPriority   = "0.7"
)

// Catalog lists the indexed books in ascending number order with their slug
// and sorted chapters. A name without any ASCII letter or digit would give an
// empty path segment, so such a book falls back to its number.
func Catalog(idx *data.Index, logger *slog.Logger) []data.Book {
	numbers := idx.Books()
	books := make([]data.Book, 0, len(numbers))
	for _, n := range numbers {
		name, _ := idx.Name(n)
		slug := utils.Slugify(name)
		if slug == "" {
			slug = strconv.Itoa(n)
			logger.Warn("book name has no slug, using book number", "book", n, "name", name)
		}
		books = append(books, data.Book{
			Number:   n,
			Name:     name,
			Slug:     slug,
			Chapters: idx.Chapters(n),
		})
	}
	return books
}

// Assemble returns the static entries followed by one entry per chapter,
// books and chapters in catalog order.
func Assemble(static []data.URLEntry, books []data.Book) []data.URLEntry {
	n := len(static)
	for _, b := range books {
		n += len(b.Chapters)
	}

	entries := make([]data.URLEntry, 0, n)
	entries = append(entries, static...)
	for _, b := range books {
		for _, c := range b.Chapters {
			entries = append(entries, data.URLEntry{
				Path:       ChapterPath(b.Slug, c),
				ChangeFreq: ChapterChangeFreq,
				Priority:   ChapterPriority,
			})
		}
	}
	return entries
}

func ChapterPath(slug string, chapter int) string {
	return fmt.Sprintf("/%s/%d", slug, chapter)
}
