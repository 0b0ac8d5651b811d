package services

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/labible/sitemap/pkg/data"
	"github.com/labible/sitemap/pkg/integrations"
	"github.com/labible/sitemap/pkg/sources"
)

// Indexer builds the book/chapter index of a verse collection.
type Indexer interface {
	Index(verses []data.Verse) (*data.Index, error)
}

// MemoryIndexer indexes verses with Go maps.
type MemoryIndexer struct{}

func (MemoryIndexer) Index(verses []data.Verse) (*data.Index, error) {
	return data.BuildIndex(verses)
}

// Result describes a finished generation.
type Result struct {
	OutPath  string
	URLCount int
	Books    int
	Chapters int
	LastMod  string
}

// Generator runs load -> index -> assemble -> serialize for one site.
type Generator struct {
	site    string
	outPath string
	static  []data.URLEntry
	source  sources.Source
	indexer Indexer
	logger  *slog.Logger
	now     func() time.Time
	closers []io.Closer
}

// Plan is the assembled content of a sitemap, before rendering.
type Plan struct {
	Books   []data.Book
	Entries []data.URLEntry
}

// Build loads and indexes the collection and assembles the entry list.
func (g *Generator) Build() (*Plan, error) {
	verses, err := g.source.Verses()
	if err != nil {
		return nil, err
	}
	g.logger.Debug("verses loaded", "count", len(verses))

	idx, err := g.indexer.Index(verses)
	if err != nil {
		return nil, fmt.Errorf("failed to index verses: %w", err)
	}
	g.logger.Debug("verses indexed", "books", len(idx.Books()), "chapters", idx.ChapterCount())

	books := Catalog(idx, g.logger)
	return &Plan{Books: books, Entries: Assemble(g.static, books)}, nil
}

// Run writes the sitemap to the configured output path. Nothing is written
// when loading or indexing fails.
func (g *Generator) Run() (*Result, error) {
	builder := integrations.NewSitemapBuilder(g.site, g.now())

	plan, err := g.Build()
	if err != nil {
		return nil, err
	}

	if err := builder.WriteFile(g.outPath, plan.Entries); err != nil {
		return nil, err
	}
	g.logger.Info("sitemap written", "path", g.outPath, "urls", len(plan.Entries))

	return g.result(builder, plan), nil
}

// Render writes the sitemap to w instead of the output path.
func (g *Generator) Render(w io.Writer) (*Result, error) {
	builder := integrations.NewSitemapBuilder(g.site, g.now())

	plan, err := g.Build()
	if err != nil {
		return nil, err
	}
	if err := builder.Render(w, plan.Entries); err != nil {
		return nil, err
	}

	res := g.result(builder, plan)
	res.OutPath = ""
	return res, nil
}

func (g *Generator) result(builder *integrations.SitemapBuilder, plan *Plan) *Result {
	chapters := 0
	for _, b := range plan.Books {
		chapters += len(b.Chapters)
	}
	return &Result{
		OutPath:  g.outPath,
		URLCount: len(plan.Entries),
		Books:    len(plan.Books),
		Chapters: chapters,
		LastMod:  builder.LastMod(),
	}
}

// Close releases the index store, if any.
func (g *Generator) Close() error {
	var first error
	for _, c := range g.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	g.closers = nil
	return first
}
