package analyze

import (
	"regexp"
	"strings"
)

var (
	tokenRe   = regexp.MustCompile(`[\p{L}\p{N}_']+`)
	nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}_]`)
)

// Tokenize splits normalized text into words: runs of word characters and
// apostrophes, in document order. Leading and trailing apostrophes are
// trimmed so quoted words do not keep their quotes.
func Tokenize(text string) []string {
	matches := tokenRe.FindAllString(text, -1)
	words := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.Trim(m, "'")
		if m != "" {
			words = append(words, m)
		}
	}
	return words
}

// stripWord lowercases a word and removes everything that is not a word
// character. Shared preprocessing for the classifier and the syllabifier.
func stripWord(word string) string {
	return nonWordRe.ReplaceAllString(strings.ToLower(word), "")
}

// countVowels counts occurrences of a, e, i, o, u and y.
func countVowels(word string) int {
	n := 0
	for _, r := range word {
		if isVowel(r) {
			n++
		}
	}
	return n
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
