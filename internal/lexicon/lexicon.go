package lexicon

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed data/cmudict-subset.txt
var embedded embed.FS

// Lexicon holds the pronunciation dictionary and the common-word set.
// Read-only after Load.
type Lexicon struct {
	pron   map[string][]string
	common map[string]struct{}
}

// Load builds a Lexicon from a CMUdict-format dictionary file. If path is
// empty, a compact embedded dictionary is used so the application works
// without any external data files.
func Load(path string) (*Lexicon, error) {
	var r io.ReadCloser
	if path == "" {
		f, err := embedded.Open("data/cmudict-subset.txt")
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded dictionary: %w", err)
		}
		r = f
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
		}
		r = f
	}
	defer r.Close()

	lex := &Lexicon{
		pron:   make(map[string][]string),
		common: make(map[string]struct{}, len(commonWords)),
	}
	for _, w := range commonWords {
		lex.common[w] = struct{}{}
	}

	if err := lex.parse(r); err != nil {
		return nil, err
	}
	return lex, nil
}

// parse reads CMUdict lines of the form "WORD  PH1 PH2 ...". Comment lines
// start with ";;;". Alternate pronunciations are marked "WORD(1)" and are
// skipped: only the first variant of each word is kept, matching how the
// syllabifier consumes the dictionary.
func (l *Lexicon) parse(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		word := strings.ToLower(fields[0])
		if strings.Contains(word, "(") {
			continue // alternate variant
		}
		if _, ok := l.pron[word]; ok {
			continue // first entry wins
		}
		l.pron[word] = fields[1:]
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read dictionary: %w", err)
	}
	return nil
}

// Phonemes returns the first pronunciation variant for a lowercase word.
// Each phoneme may carry a trailing stress digit (0, 1 or 2).
func (l *Lexicon) Phonemes(word string) ([]string, bool) {
	p, ok := l.pron[word]
	return p, ok
}

// IsCommon reports whether the word is in the curated common-word set.
func (l *Lexicon) IsCommon(word string) bool {
	_, ok := l.common[word]
	return ok
}

// Size returns the number of dictionary entries, mostly for startup logging.
func (l *Lexicon) Size() int {
	return len(l.pron)
}
