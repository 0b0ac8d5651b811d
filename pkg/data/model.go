package data

// Verse is one record of the input collection. Only the fields needed to
// build the site's chapter routes are kept.
type Verse struct {
	Book     int
	Chapter  int
	BookName string
	HasName  bool // false when the record carried no book_name
}

// Book is a book of the collection as it appears on the site.
type Book struct {
	Number   int
	Name     string
	Slug     string
	Chapters []int // ascending, unique
}

type ChangeFreq string

const (
	Always  ChangeFreq = "always"
	Hourly  ChangeFreq = "hourly"
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
	Never   ChangeFreq = "never"
)

// Valid reports whether f is one of the values allowed by the sitemaps.org schema.
func (f ChangeFreq) Valid() bool {
	switch f {
	case Always, Hourly, Daily, Weekly, Monthly, Yearly, Never:
		return true
	}
	return false
}

// URLEntry is a single page of the sitemap, relative to the site root.
type URLEntry struct {
	Path       string
	ChangeFreq ChangeFreq
	Priority   string // kept as text so "1.0" is written verbatim
}
