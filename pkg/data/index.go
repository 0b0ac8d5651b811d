package data

import (
	"fmt"
	"sort"
)

// Index is the book -> name and book -> chapters view of a verse collection.
//
// A book's display name is the one carried by the first verse seen for that
// book; later verses never replace it.
type Index struct {
	names    map[int]string
	chapters map[int]map[int]struct{}
}

func NewIndex() *Index {
	return &Index{
		names:    make(map[int]string),
		chapters: make(map[int]map[int]struct{}),
	}
}

// BuildIndex scans verses once, in order.
func BuildIndex(verses []Verse) (*Index, error) {
	idx := NewIndex()
	for i, v := range verses {
		if err := idx.Add(v); err != nil {
			return nil, fmt.Errorf("verse %d: %w", i, err)
		}
	}
	return idx, nil
}

// Add registers a verse. The name is only read the first time the book is seen.
func (x *Index) Add(v Verse) error {
	if _, seen := x.names[v.Book]; !seen {
		if !v.HasName {
			return fmt.Errorf("book %d: missing book_name", v.Book)
		}
		x.SetNameIfAbsent(v.Book, v.BookName)
	}
	x.AddChapter(v.Book, v.Chapter)
	return nil
}

// SetNameIfAbsent stores name for book unless the book already has one.
// It reports whether the name was stored.
func (x *Index) SetNameIfAbsent(book int, name string) bool {
	if _, ok := x.names[book]; ok {
		return false
	}
	x.names[book] = name
	return true
}

func (x *Index) AddChapter(book, chapter int) {
	set, ok := x.chapters[book]
	if !ok {
		set = make(map[int]struct{})
		x.chapters[book] = set
	}
	set[chapter] = struct{}{}
}

func (x *Index) Name(book int) (string, bool) {
	name, ok := x.names[book]
	return name, ok
}

// Books returns the indexed book numbers in ascending order.
func (x *Index) Books() []int {
	books := make([]int, 0, len(x.names))
	for b := range x.names {
		books = append(books, b)
	}
	sort.Ints(books)
	return books
}

// Chapters returns the chapters of book in ascending order.
func (x *Index) Chapters(book int) []int {
	set := x.chapters[book]
	chapters := make([]int, 0, len(set))
	for c := range set {
		chapters = append(chapters, c)
	}
	sort.Ints(chapters)
	return chapters
}

// ChapterCount is the number of distinct (book, chapter) pairs.
func (x *Index) ChapterCount() int {
	n := 0
	for _, set := range x.chapters {
		n += len(set)
	}
	return n
}
