package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestArchiveAudio(t *testing.T) {
	base := t.TempDir()
	audioDir := filepath.Join(base, "audio")
	if err := os.MkdirAll(audioDir, 0755); err != nil {
		t.Fatalf("Failed to create audio directory: %v", err)
	}
	artifact := filepath.Join(audioDir, "speech_doc_ab12cd34.mp3")
	if err := os.WriteFile(artifact, []byte{0xFF, 0xFB}, 0644); err != nil {
		t.Fatalf("Failed to write artifact: %v", err)
	}

	archivePath, err := ArchiveAudio(audioDir)
	if err != nil {
		t.Fatalf("ArchiveAudio failed: %v", err)
	}

	if !strings.HasPrefix(filepath.Base(archivePath), "audio-") {
		t.Errorf("Archive path = %q, want audio-<timestamp> name", archivePath)
	}

	// Original directory gone, artifact preserved inside the archive.
	if _, err := os.Stat(audioDir); !os.IsNotExist(err) {
		t.Error("Audio directory should have been moved away")
	}
	moved := filepath.Join(archivePath, "speech_doc_ab12cd34.mp3")
	if _, err := os.Stat(moved); err != nil {
		t.Errorf("Archived artifact missing: %v", err)
	}
}

func TestArchiveAudioMissingDir(t *testing.T) {
	if _, err := ArchiveAudio(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected error for missing audio directory")
	}
}
