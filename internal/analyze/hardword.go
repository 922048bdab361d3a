package analyze

import "codeberg.org/snonux/wordwand/internal/lexicon"

// IsHard reports whether a word is likely difficult for a struggling
// reader. The rules run in a fixed order and the first match decides.
// Rule 5 re-checks the common-word set even though rule 2 already
// excluded it; the redundancy is kept on purpose so the outcome stays
// identical for every input.
func IsHard(lex *lexicon.Lexicon, word string) bool {
	word = stripWord(word)

	if len([]rune(word)) <= 2 {
		return false
	}
	if lex.IsCommon(word) {
		return false
	}
	if len([]rune(word)) >= 6 {
		return true
	}
	if countVowels(word) >= 3 {
		return true
	}
	if len([]rune(word)) >= 4 && !lex.IsCommon(word) {
		return true
	}
	return false
}
