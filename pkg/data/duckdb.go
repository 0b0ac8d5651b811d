package data

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

const schema = `
CREATE TABLE IF NOT EXISTS verses (
	seq       BIGINT  NOT NULL,
	book      INTEGER NOT NULL,
	chapter   INTEGER NOT NULL,
	book_name VARCHAR
)`

// InitDuckDB opens the database at path and creates the verses table.
// An empty path opens an in-memory database.
func InitDuckDB(path string) (*sql.DB, error) {
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}
	// in-memory databases are per connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return db, nil
}

// Repository indexes verses with SQL instead of in Go maps.
type Repository struct {
	db *sql.DB
}

func NewDuckDBRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// Reset removes every stored verse.
func (r *Repository) Reset() error {
	_, err := r.db.Exec(`DELETE FROM verses`)
	return err
}

// SaveVerses appends verses, numbering them after the ones already stored so
// input order is preserved.
func (r *Repository) SaveVerses(verses []Verse) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var next int64
	if err := tx.QueryRow(`SELECT COALESCE(MAX(seq) + 1, 0) FROM verses`).Scan(&next); err != nil {
		return fmt.Errorf("failed to read sequence: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO verses (seq, book, chapter, book_name) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, v := range verses {
		name := sql.NullString{String: v.BookName, Valid: v.HasName}
		if _, err := stmt.Exec(next+int64(i), v.Book, v.Chapter, name); err != nil {
			return fmt.Errorf("failed to save verse %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// CountVerses returns the number of stored verses.
func (r *Repository) CountVerses() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM verses`).Scan(&n)
	return n, err
}

// BuildIndex derives the index from the stored verses. The name of a book is
// taken from its lowest-sequence verse.
func (r *Repository) BuildIndex() (*Index, error) {
	idx := NewIndex()

	rows, err := r.db.Query(`
		SELECT book, book_name
		FROM (
			SELECT book, book_name,
			       row_number() OVER (PARTITION BY book ORDER BY seq) AS rn
			FROM verses
		)
		WHERE rn = 1
		ORDER BY book`)
	if err != nil {
		return nil, fmt.Errorf("failed to query book names: %w", err)
	}
	for rows.Next() {
		var book int
		var name sql.NullString
		if err := rows.Scan(&book, &name); err != nil {
			rows.Close()
			return nil, err
		}
		if !name.Valid {
			rows.Close()
			return nil, fmt.Errorf("book %d: missing book_name", book)
		}
		idx.SetNameIfAbsent(book, name.String)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	rows, err = r.db.Query(`SELECT DISTINCT book, chapter FROM verses ORDER BY book, chapter`)
	if err != nil {
		return nil, fmt.Errorf("failed to query chapters: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var book, chapter int
		if err := rows.Scan(&book, &chapter); err != nil {
			return nil, err
		}
		idx.AddChapter(book, chapter)
	}
	return idx, rows.Err()
}

// Index stores verses in a clean table and builds their index.
func (r *Repository) Index(verses []Verse) (*Index, error) {
	if err := r.Reset(); err != nil {
		return nil, fmt.Errorf("failed to reset verses: %w", err)
	}
	if err := r.SaveVerses(verses); err != nil {
		return nil, err
	}
	return r.BuildIndex()
}
