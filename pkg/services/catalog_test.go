package services

import (
	"bytes"
	"testing"

	"github.com/labible/sitemap/pkg/data"
	"github.com/labible/sitemap/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func named(book, chapter int, name string) data.Verse {
	return data.Verse{Book: book, Chapter: chapter, BookName: name, HasName: true}
}

func TestCatalog(t *testing.T) {
	idx, err := data.BuildIndex([]data.Verse{
		named(2, 1, "Exode"),
		named(1, 2, "Genèse"),
		named(1, 1, "Genèse"),
		named(22, 8, "Cantique des Cantiques"),
	})
	require.NoError(t, err)

	books := Catalog(idx, logging.Discard())
	assert.Equal(t, []data.Book{
		{Number: 1, Name: "Genèse", Slug: "genese", Chapters: []int{1, 2}},
		{Number: 2, Name: "Exode", Slug: "exode", Chapters: []int{1}},
		{Number: 22, Name: "Cantique des Cantiques", Slug: "cantique-des-cantiques", Chapters: []int{8}},
	}, books)
}

func TestCatalogEmptySlugFallsBackToNumber(t *testing.T) {
	idx, err := data.BuildIndex([]data.Verse{named(7, 1, "שופטים")})
	require.NoError(t, err)

	var buf bytes.Buffer
	books := Catalog(idx, logging.New(&buf, 0, logging.FormatText))

	require.Len(t, books, 1)
	assert.Equal(t, "7", books[0].Slug)
	assert.Contains(t, buf.String(), "book=7")

	entries := Assemble(nil, books)
	assert.Equal(t, "/7/1", entries[0].Path)
}

func TestAssemble(t *testing.T) {
	static := []data.URLEntry{
		{Path: "/", ChangeFreq: data.Daily, Priority: "1.0"},
		{Path: "/contact.html", ChangeFreq: data.Monthly, Priority: "0.5"},
	}
	books := []data.Book{
		{Number: 1, Slug: "genese", Chapters: []int{1, 2}},
		{Number: 2, Slug: "exode", Chapters: []int{1}},
	}

	entries := Assemble(static, books)
	assert.Equal(t, []data.URLEntry{
		{Path: "/", ChangeFreq: data.Daily, Priority: "1.0"},
		{Path: "/contact.html", ChangeFreq: data.Monthly, Priority: "0.5"},
		{Path: "/genese/1", ChangeFreq: data.Weekly, Priority: "0.7"},
		{Path: "/genese/2", ChangeFreq: data.Weekly, Priority: "0.7"},
		{Path: "/exode/1", ChangeFreq: data.Weekly, Priority: "0.7"},
	}, entries)
}

func TestAssembleDoesNotAliasStatic(t *testing.T) {
	static := make([]data.URLEntry, 1, 4)
	static[0] = data.URLEntry{Path: "/", ChangeFreq: data.Daily, Priority: "1.0"}

	Assemble(static, []data.Book{{Number: 1, Slug: "genese", Chapters: []int{1}}})
	assert.Equal(t, data.URLEntry{}, static[:2][1])
}

func TestChapterPath(t *testing.T) {
	assert.Equal(t, "/1-samuel/31", ChapterPath("1-samuel", 31))
}
