package audio

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateSpeechText validates text before it is sent to a synthesis
// backend.
func ValidateSpeechText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}
	return nil
}

// SplitSpeechText splits text into segments of at most max runes for
// backends with a per-request input ceiling. Splits happen at sentence
// boundaries where possible, then at word boundaries; only a single
// word longer than max is cut mid-word.
func SplitSpeechText(text string, max int) []string {
	if max <= 0 || len([]rune(text)) <= max {
		return []string{text}
	}

	var segments []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			segments = append(segments, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, sentence := range splitSentences(text) {
		for _, piece := range splitLongSentence(sentence, max) {
			pieceLen := len([]rune(piece))
			if currentLen > 0 && currentLen+1+pieceLen > max {
				flush()
			}
			if currentLen > 0 {
				current.WriteByte(' ')
				currentLen++
			}
			current.WriteString(piece)
			currentLen += pieceLen
		}
	}
	flush()

	return segments
}

// splitSentences cuts text after sentence-ending punctuation followed by
// whitespace. The punctuation stays with its sentence.
func splitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if (r == '.' || r == '!' || r == '?') &&
			(i+1 == len(runes) || unicode.IsSpace(runes[i+1])) {
			if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
				sentences = append(sentences, s)
			}
			start = i + 1
		}
	}
	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

// splitLongSentence breaks a sentence exceeding max runes at word
// boundaries, cutting mid-word only when a single word is itself longer
// than max.
func splitLongSentence(sentence string, max int) []string {
	if len([]rune(sentence)) <= max {
		return []string{sentence}
	}

	var pieces []string
	var current []rune
	for _, word := range strings.Fields(sentence) {
		wordRunes := []rune(word)
		for len(wordRunes) > max {
			if len(current) > 0 {
				pieces = append(pieces, string(current))
				current = nil
			}
			pieces = append(pieces, string(wordRunes[:max]))
			wordRunes = wordRunes[max:]
		}
		if len(current) > 0 && len(current)+1+len(wordRunes) > max {
			pieces = append(pieces, string(current))
			current = nil
		}
		if len(current) > 0 {
			current = append(current, ' ')
		}
		current = append(current, wordRunes...)
	}
	if len(current) > 0 {
		pieces = append(pieces, string(current))
	}
	return pieces
}
