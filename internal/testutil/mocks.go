package testutil

import (
	"context"
	"os"
	"sync"

	"codeberg.org/snonux/wordwand/internal/store"
)

// MockProvider is a test double for the audio Provider interface. By
// default it writes a few fake MP3 bytes to the output file.
type MockProvider struct {
	GenerateErr  error
	AvailableErr error
	PanicMessage string // when set, GenerateAudio panics

	mu    sync.Mutex
	Texts []string
	Files []string
}

// GenerateAudio records the call and writes a placeholder audio file.
func (m *MockProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if m.PanicMessage != "" {
		panic(m.PanicMessage)
	}

	m.mu.Lock()
	m.Texts = append(m.Texts, text)
	m.Files = append(m.Files, outputFile)
	m.mu.Unlock()

	if m.GenerateErr != nil {
		return m.GenerateErr
	}
	return os.WriteFile(outputFile, []byte{0xFF, 0xFB, 0x90, 0x00}, 0644)
}

// Name returns the provider name
func (m *MockProvider) Name() string { return "mock" }

// IsAvailable reports the configured availability error
func (m *MockProvider) IsAvailable() error { return m.AvailableErr }

// MockStore is an in-memory store.Store capturing created records.
type MockStore struct {
	CreateErr error

	mu      sync.Mutex
	Records []*store.Record
	nextID  int64
}

// Create captures the record and assigns an ID.
func (m *MockStore) Create(ctx context.Context, rec *store.Record) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	rec.ID = m.nextID
	m.Records = append(m.Records, rec)
	return rec.ID, nil
}

// Close is a no-op.
func (m *MockStore) Close() error { return nil }

// Last returns the most recently created record, or nil.
func (m *MockStore) Last() *store.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Records) == 0 {
		return nil
	}
	return m.Records[len(m.Records)-1]
}
