// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package candidate persists the candidate's CV as searchable text
// chunks in a SQLite database. The store is an explicit handle owned by
// the caller; nothing in this package holds global state.
package candidate

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/outreach-engine/pkg/types"
)

const dbFile = "candidate.db"

// ErrNotLoaded is returned by Search before a CV has been loaded.
var ErrNotLoaded = errors.New("CV has not been loaded yet")

// Source is the read side of the CV store consumed by the tool layer.
type Source interface {
	Search(ctx context.Context, query string, k int) ([]Chunk, error)
}

// Chunk is one stored CV passage.
type Chunk struct {
	Seq     int    `json:"seq"`
	Content string `json:"content"`
}

// Store manages the candidate CV database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the CV database under cfg.DataDir. An empty
// DataDir uses an in-memory database.
func NewStore(cfg types.CandidateConfig) (*Store, error) {
	dsn := "file::memory:?cache=shared"
	if cfg.DataDir != "" {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		dsn = filepath.Join(cfg.DataDir, dbFile) + "?_journal_mode=WAL"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS cv_chunks (
			seq INTEGER PRIMARY KEY,
			content TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS cv_meta (
			key TEXT PRIMARY KEY,
			value TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// pdfText extracts plain text from a PDF file. Declared as a var so
// tests can substitute fixture text without a real PDF.
var pdfText = func(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	reader, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Load extracts the CV PDF's text, chunks it, and replaces any
// previously stored CV. It returns the number of chunks stored.
func (s *Store) Load(ctx context.Context, cvPath string) (int, error) {
	if _, err := os.Stat(cvPath); err != nil {
		return 0, fmt.Errorf("CV file not found at %s: %w", cvPath, err)
	}
	text, err := pdfText(cvPath)
	if err != nil {
		return 0, fmt.Errorf("reading CV PDF: %w", err)
	}
	return s.LoadText(ctx, text)
}

// LoadText stores pre-extracted CV text, replacing any previous content.
func (s *Store) LoadText(ctx context.Context, text string) (int, error) {
	chunks := chunkText(text)
	if len(chunks) == 0 {
		return 0, errors.New("CV text is empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cv_chunks`); err != nil {
		return 0, fmt.Errorf("clearing old chunks: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO cv_chunks (seq, content) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, chunk := range chunks {
		if _, err := stmt.ExecContext(ctx, i, chunk); err != nil {
			return 0, fmt.Errorf("inserting chunk %d: %w", i, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO cv_meta (key, value) VALUES ('loaded', 'true')
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`); err != nil {
		return 0, fmt.Errorf("marking store loaded: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(chunks), nil
}

// Loaded reports whether a CV has been stored.
func (s *Store) Loaded(ctx context.Context) bool {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM cv_meta WHERE key = 'loaded'`).Scan(&value)
	return err == nil && value == "true"
}

// maxChunkRunes bounds chunk size; paragraphs accumulate until the next
// one would overflow.
const maxChunkRunes = 800

// chunkText splits CV text into paragraph-aligned chunks.
func chunkText(text string) []string {
	var chunks []string
	var current strings.Builder

	flush := func() {
		if c := strings.TrimSpace(current.String()); c != "" {
			chunks = append(chunks, c)
		}
		current.Reset()
	}

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if current.Len() > 0 && len([]rune(current.String()))+len([]rune(para)) > maxChunkRunes {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)
	}
	flush()
	return chunks
}
