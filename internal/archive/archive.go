// Package archive moves generated audio artifacts out of the active
// directory. Retention of archived audio is the operator's policy.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveAudio moves the audio directory to a timestamped location under
// a sibling "archive" directory.
func ArchiveAudio(audioDir string) (string, error) {
	if _, err := os.Stat(audioDir); os.IsNotExist(err) {
		return "", fmt.Errorf("audio directory does not exist: %s", audioDir)
	}

	parentDir := filepath.Dir(audioDir)
	archiveDir := filepath.Join(parentDir, "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("audio-%s", timestamp))

	// Unlikely, but a second archive within the same second needs a
	// distinct name.
	if _, err := os.Stat(archivePath); err == nil {
		timestamp = time.Now().Format("20060102-150405.000000")
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("audio-%s", timestamp))
	}

	if err := os.Rename(audioDir, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive audio directory: %w", err)
	}

	return archivePath, nil
}
