package analyze

import (
	"strings"
	"testing"
)

func TestSyllabifyDictionary(t *testing.T) {
	lex := loadLexicon(t)

	tests := []struct {
		word string
		want string
	}{
		// Syllables close at stress-marked phonemes; a trailing run of
		// unstressed phonemes becomes a final syllable.
		{"beautiful", "byuw-tah-fah-l"},
		{"occurred", "ah-ker-d"},
		{"school", "skuw-l"},
		{"jumping", "jhah-mpih-ng"},
		{"unbelievable", "ah-nbih-liy-vah-bah-l"},
		{"circumstances", "ser-kah-mstae-nsah-z"},
		// Case and punctuation are stripped first.
		{"Beautiful!", "byuw-tah-fah-l"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := Syllabify(lex, tt.word); got != tt.want {
				t.Errorf("Syllabify(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestSyllabifyFallback(t *testing.T) {
	lex := loadLexicon(t)

	tests := []struct {
		word string
		want string
	}{
		// Vowel followed by consonant closes a syllable.
		{"cat", "ca-t"},
		{"hello", "he-llo"},
		{"strength", "stre-ngth"},
		// Fewer than two segments: returned unsplit.
		{"sky", "sky"},
		{"zzz", "zzz"},
		{"", ""},
		// Apostrophe is stripped, so the split runs on "dont".
		{"don't", "do-nt"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if tt.word != "" {
				if _, ok := lex.Phonemes(stripWord(tt.word)); ok {
					t.Fatalf("Test word %q unexpectedly present in dictionary", tt.word)
				}
			}
			if got := Syllabify(lex, tt.word); got != tt.want {
				t.Errorf("Syllabify(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestSyllabifyConcatenation(t *testing.T) {
	lex := loadLexicon(t)

	// For fallback words, removing the hyphens must reproduce the
	// stripped word exactly.
	for _, word := range []string{"cat", "hello", "strength", "wandering", "playground"} {
		if _, ok := lex.Phonemes(word); ok {
			continue
		}
		got := Syllabify(lex, word)
		if strings.ReplaceAll(got, "-", "") != word {
			t.Errorf("Syllabify(%q) = %q: concatenation does not reproduce the word", word, got)
		}
		if strings.Contains(got, " ") {
			t.Errorf("Syllabify(%q) = %q contains whitespace", word, got)
		}
	}
}
