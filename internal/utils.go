package internal

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// RandomSuffix returns a short random hex string used to make generated
// file names collision-safe. The suffix space is large enough that
// concurrent invocations sharing a directory do not need coordination.
func RandomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// FileStem returns the filename without its extension.
func FileStem(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i]
	}
	return name
}
