// Package batch reads lists of documents to process in one run.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadBatchFile reads document paths from a file, one per line. Blank
// lines and lines starting with '#' are skipped. Relative paths are
// resolved against the batch file's directory.
func ReadBatchFile(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	baseDir := filepath.Dir(filename)

	var paths []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !filepath.IsAbs(line) {
			line = filepath.Join(baseDir, line)
		}
		paths = append(paths, line)
	}

	return paths, nil
}
