package batch

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadBatchFile(t *testing.T) {
	dir := t.TempDir()
	batchFile := filepath.Join(dir, "docs.txt")
	content := "# reading homework\n" +
		"chapter1.pdf\n" +
		"\n" +
		"scans/page2.png\n" +
		"/absolute/notes.txt\r\n" +
		"   \n"
	if err := os.WriteFile(batchFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write batch file: %v", err)
	}

	paths, err := ReadBatchFile(batchFile)
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "chapter1.pdf"),
		filepath.Join(dir, "scans", "page2.png"),
		"/absolute/notes.txt",
	}
	if len(paths) != len(want) {
		t.Fatalf("Got %d paths, want %d: %v", len(paths), len(want), paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("Path %d = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestReadBatchFileMissing(t *testing.T) {
	if _, err := ReadBatchFile("/nonexistent/docs.txt"); err == nil {
		t.Error("Expected error for missing batch file")
	}
}
