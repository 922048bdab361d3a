package analyze

import (
	"strings"

	"codeberg.org/snonux/wordwand/internal/lexicon"
)

// Syllabify splits a word into a hyphen-joined syllable string. Words
// found in the pronunciation dictionary are split on phoneme stress
// digits; everything else falls back to a vowel-boundary heuristic.
// If neither path finds two or more syllables, the word is returned
// unsplit rather than as a single-syllable "split".
func Syllabify(lex *lexicon.Lexicon, word string) string {
	word = stripWord(word)
	if word == "" {
		return word
	}

	if phonemes, ok := lex.Phonemes(word); ok {
		return joinPhonemeSyllables(phonemes)
	}
	return vowelSplit(word)
}

// joinPhonemeSyllables accumulates digit-stripped phoneme stems and closes
// a syllable at every stress-marked phoneme. A trailing buffer of unstressed
// phonemes becomes a final syllable of its own.
func joinPhonemeSyllables(phonemes []string) string {
	var syllables []string
	var current strings.Builder

	for _, phoneme := range phonemes {
		stem := strings.TrimRight(phoneme, "012")
		current.WriteString(strings.ToLower(stem))
		if stem != phoneme {
			syllables = append(syllables, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		syllables = append(syllables, current.String())
	}
	return strings.Join(syllables, "-")
}

// vowelSplit closes a syllable after each vowel that is followed by a
// consonant, then appends whatever remains.
func vowelSplit(word string) string {
	runes := []rune(word)
	var syllables []string
	var current strings.Builder

	for i, r := range runes {
		current.WriteRune(r)
		if isVowel(r) && i < len(runes)-1 && !isVowel(runes[i+1]) {
			syllables = append(syllables, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		syllables = append(syllables, current.String())
	}

	if len(syllables) < 2 {
		return word
	}
	return strings.Join(syllables, "-")
}
