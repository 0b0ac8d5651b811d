package integrations

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/labible/sitemap/pkg/data"
)

const (
	Namespace  = "http://www.sitemaps.org/schemas/sitemap/0.9"
	DateLayout = "2006-01-02"
)

type urlSet struct {
	XMLName xml.Name  `xml:"urlset"`
	Xmlns   string    `xml:"xmlns,attr"`
	URLs    []siteURL `xml:"url"`
}

type siteURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// SitemapBuilder renders sitemaps.org documents for one site. Every entry
// gets the same lastmod date.
type SitemapBuilder struct {
	site    string
	lastMod string
}

var _ Renderer = (*SitemapBuilder)(nil)

func NewSitemapBuilder(site string, lastMod time.Time) *SitemapBuilder {
	return &SitemapBuilder{site: site, lastMod: lastMod.Format(DateLayout)}
}

func (b *SitemapBuilder) LastMod() string {
	return b.lastMod
}

// Loc is the absolute URL of a site path.
func (b *SitemapBuilder) Loc(path string) string {
	return b.site + path
}

func (b *SitemapBuilder) Render(w io.Writer, entries []data.URLEntry) error {
	set := urlSet{Xmlns: Namespace, URLs: make([]siteURL, 0, len(entries))}
	for _, e := range entries {
		set.URLs = append(set.URLs, siteURL{
			Loc:        b.Loc(e.Path),
			LastMod:    b.lastMod,
			ChangeFreq: string(e.ChangeFreq),
			Priority:   e.Priority,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("failed to encode sitemap: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFile renders the sitemap in memory and replaces path with it. The
// document is written to a temporary file next to path and renamed, so
// readers never see a partial sitemap.
func (b *SitemapBuilder) WriteFile(path string, entries []data.URLEntry) error {
	var buf bytes.Buffer
	if err := b.Render(&buf, entries); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write sitemap: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
