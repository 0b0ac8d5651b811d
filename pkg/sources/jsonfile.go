package sources

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/labible/sitemap/pkg/data"
)

// document is the on-disk layout: {"verses": [{"book": 1, "chapter": 1, "book_name": "Genèse", ...}]}
type document struct {
	Verses *[]record `json:"verses"`
}

type record struct {
	Book     json.RawMessage `json:"book"`
	Chapter  json.RawMessage `json:"chapter"`
	BookName *string         `json:"book_name"`
}

// JSONFile reads verses from a JSON document on disk.
type JSONFile struct {
	path string
}

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

func (j *JSONFile) Path() string {
	return j.path
}

// Exists reports whether the input file is present. A missing file is
// reported as ErrNotFound so callers can stop before touching any output.
func (j *JSONFile) Exists() error {
	if _, err := os.Stat(j.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, j.path)
		}
		return err
	}
	return nil
}

func (j *JSONFile) Verses() ([]data.Verse, error) {
	if err := j.Exists(); err != nil {
		return nil, err
	}

	f, err := os.Open(j.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	verses, err := DecodeVerses(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", j.path, err)
	}
	return verses, nil
}

// DecodeVerses parses a verses document. Fields other than book, chapter and
// book_name are ignored.
func DecodeVerses(r io.Reader) ([]data.Verse, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Verses == nil {
		return nil, fmt.Errorf("%w: missing \"verses\" key", ErrMalformed)
	}

	verses := make([]data.Verse, 0, len(*doc.Verses))
	for i, rec := range *doc.Verses {
		book, err := coerceInt(rec.Book)
		if err != nil {
			return nil, fmt.Errorf("%w: verse %d: book: %v", ErrMalformed, i, err)
		}
		chapter, err := coerceInt(rec.Chapter)
		if err != nil {
			return nil, fmt.Errorf("%w: verse %d: chapter: %v", ErrMalformed, i, err)
		}

		v := data.Verse{Book: book, Chapter: chapter}
		if rec.BookName != nil {
			v.BookName = *rec.BookName
			v.HasName = true
		}
		verses = append(verses, v)
	}
	return verses, nil
}

// coerceInt accepts a JSON number (truncated toward zero) or a string holding
// a base-10 integer.
func coerceInt(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, errors.New("missing")
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("invalid integer %q", s)
		}
		return n, nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if n, err := strconv.Atoi(string(raw)); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return 0, err
		}
		f = math.Trunc(f)
		if f > math.MaxInt32 || f < math.MinInt32 {
			return 0, fmt.Errorf("%s out of range", raw)
		}
		return int(f), nil
	}
	return 0, fmt.Errorf("expected a number, got %s", raw)
}
