package store

import (
	"context"
	"time"
)

// Record is one completed processing attempt. Created once at the end of a
// successful pipeline run, never mutated afterwards.
type Record struct {
	ID                int64
	Owner             string
	FileType          string
	ExtractedText     string
	AudioFile         string
	HardWords         []string
	Syllables         map[string]string
	ProcessingSeconds float64
	CreatedAt         time.Time
}

// Store persists processing records.
type Store interface {
	// Create inserts a record and returns its ID.
	Create(ctx context.Context, rec *Record) (int64, error)

	// Close releases the underlying resources.
	Close() error
}
