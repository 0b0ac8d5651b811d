package integrations

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/labible/sitemap/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2026, time.March, 8, 23, 30, 0, 0, time.UTC)

func testEntries() []data.URLEntry {
	return []data.URLEntry{
		{Path: "/", ChangeFreq: data.Daily, Priority: "1.0"},
		{Path: "/genese/1", ChangeFreq: data.Weekly, Priority: "0.7"},
		{Path: "/genese/2", ChangeFreq: data.Weekly, Priority: "0.7"},
	}
}

func fieldTexts(t *testing.T, doc *xmlquery.Node, field string) []string {
	t.Helper()
	var out []string
	for _, n := range xmlquery.Find(doc, "//*[local-name()='url']/*[local-name()='"+field+"']") {
		out = append(out, n.InnerText())
	}
	return out
}

func TestRender(t *testing.T) {
	b := NewSitemapBuilder("https://labible.app", testDate)

	var buf bytes.Buffer
	require.NoError(t, b.Render(&buf, testEntries()))

	want := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url>
    <loc>https://labible.app/</loc>
    <lastmod>2026-03-08</lastmod>
    <changefreq>daily</changefreq>
    <priority>1.0</priority>
  </url>
  <url>
    <loc>https://labible.app/genese/1</loc>
    <lastmod>2026-03-08</lastmod>
    <changefreq>weekly</changefreq>
    <priority>0.7</priority>
  </url>
  <url>
    <loc>https://labible.app/genese/2</loc>
    <lastmod>2026-03-08</lastmod>
    <changefreq>weekly</changefreq>
    <priority>0.7</priority>
  </url>
</urlset>
`
	assert.Equal(t, want, buf.String())
}

func TestRenderQueryable(t *testing.T) {
	b := NewSitemapBuilder("https://labible.app", testDate)

	var buf bytes.Buffer
	require.NoError(t, b.Render(&buf, testEntries()))

	doc, err := xmlquery.Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)

	root := xmlquery.FindOne(doc, "/*")
	require.NotNil(t, root)
	assert.Equal(t, "urlset", root.Data)
	assert.Equal(t, Namespace, root.NamespaceURI)

	assert.Equal(t, []string{
		"https://labible.app/",
		"https://labible.app/genese/1",
		"https://labible.app/genese/2",
	}, fieldTexts(t, doc, "loc"))
	assert.Equal(t, []string{"2026-03-08", "2026-03-08", "2026-03-08"}, fieldTexts(t, doc, "lastmod"))
	assert.Equal(t, []string{"daily", "weekly", "weekly"}, fieldTexts(t, doc, "changefreq"))
	assert.Equal(t, []string{"1.0", "0.7", "0.7"}, fieldTexts(t, doc, "priority"))

	// child order inside <url>
	first := xmlquery.FindOne(doc, "//*[local-name()='url']")
	var names []string
	for n := first.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			names = append(names, n.Data)
		}
	}
	assert.Equal(t, []string{"loc", "lastmod", "changefreq", "priority"}, names)
}

func TestRenderEmpty(t *testing.T) {
	b := NewSitemapBuilder("https://labible.app", testDate)

	var buf bytes.Buffer
	require.NoError(t, b.Render(&buf, nil))
	assert.Equal(t, `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"></urlset>
`, buf.String())
}

func TestRenderEscapes(t *testing.T) {
	b := NewSitemapBuilder("https://labible.app", testDate)

	var buf bytes.Buffer
	require.NoError(t, b.Render(&buf, []data.URLEntry{
		{Path: "/recherche?q=a&b=c", ChangeFreq: data.Never, Priority: "0.1"},
	}))
	assert.Contains(t, buf.String(), "<loc>https://labible.app/recherche?q=a&amp;b=c</loc>")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sitemap.xml")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	b := NewSitemapBuilder("https://labible.app", testDate)
	require.NoError(t, b.WriteFile(path, testEntries()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.True(t, strings.HasSuffix(string(content), "</urlset>\n"))
	assert.Equal(t, 3, strings.Count(string(content), "<url>"))

	// no temp files left behind
	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestWriteFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "public", "sitemap.xml")

	b := NewSitemapBuilder("https://labible.app", testDate)
	require.NoError(t, b.WriteFile(path, testEntries()))
	assert.FileExists(t, path)
}

func TestLoc(t *testing.T) {
	b := NewSitemapBuilder("https://labible.app", testDate)
	assert.Equal(t, "https://labible.app/exode/1", b.Loc("/exode/1"))
	assert.Equal(t, "2026-03-08", b.LastMod())
}
