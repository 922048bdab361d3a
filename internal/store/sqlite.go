package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS processing_requests (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	owner TEXT NOT NULL,
	file_type TEXT NOT NULL,
	extracted_text TEXT NOT NULL,
	audio_file TEXT NOT NULL DEFAULT '',
	hard_words TEXT NOT NULL DEFAULT '[]',
	syllables TEXT NOT NULL DEFAULT '{}',
	processing_seconds REAL NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);
`

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema
// exists.
func Open(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Create inserts one record and returns its ID.
func (s *SQLiteStore) Create(ctx context.Context, rec *Record) (int64, error) {
	hardWords, err := json.Marshal(rec.HardWords)
	if err != nil {
		return 0, fmt.Errorf("failed to encode hard words: %w", err)
	}
	syllables, err := json.Marshal(rec.Syllables)
	if err != nil {
		return 0, fmt.Errorf("failed to encode syllables: %w", err)
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO processing_requests
		 (owner, file_type, extracted_text, audio_file, hard_words, syllables, processing_seconds, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Owner, rec.FileType, rec.ExtractedText, rec.AudioFile,
		string(hardWords), string(syllables), rec.ProcessingSeconds, createdAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read record ID: %w", err)
	}
	rec.ID = id
	return id, nil
}

// Get loads one record by ID, mostly for tests and inspection tooling.
func (s *SQLiteStore) Get(ctx context.Context, id int64) (*Record, error) {
	var (
		rec       Record
		hardWords string
		syllables string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, owner, file_type, extracted_text, audio_file, hard_words, syllables, processing_seconds, created_at
		 FROM processing_requests WHERE id = ?`, id).
		Scan(&rec.ID, &rec.Owner, &rec.FileType, &rec.ExtractedText, &rec.AudioFile,
			&hardWords, &syllables, &rec.ProcessingSeconds, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to load record %d: %w", id, err)
	}

	if err := json.Unmarshal([]byte(hardWords), &rec.HardWords); err != nil {
		return nil, fmt.Errorf("failed to decode hard words: %w", err)
	}
	if err := json.Unmarshal([]byte(syllables), &rec.Syllables); err != nil {
		return nil, fmt.Errorf("failed to decode syllables: %w", err)
	}
	return &rec, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
