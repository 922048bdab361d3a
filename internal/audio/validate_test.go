package audio

import (
	"strings"
	"testing"
)

func TestValidateSpeechText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{
			name:    "valid sentence",
			text:    "The cat sat on the mat.",
			wantErr: false,
		},
		{
			name:    "empty string",
			text:    "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			text:    "   \n\t",
			wantErr: true,
		},
		{
			name:    "long document text is accepted",
			text:    strings.Repeat("The unbelievable circumstances occurred again. ", 100),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSpeechText(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSpeechText() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSplitSpeechTextShortText(t *testing.T) {
	segments := SplitSpeechText("The cat sat.", 4096)
	if len(segments) != 1 || segments[0] != "The cat sat." {
		t.Errorf("SplitSpeechText = %v, want the text unchanged", segments)
	}
}

func TestSplitSpeechTextLongDocument(t *testing.T) {
	sentence := "The unbelievable circumstances occurred again."
	text := strings.TrimSpace(strings.Repeat(sentence+" ", 100))

	segments := SplitSpeechText(text, maxSpeechSegmentLen)
	if len(segments) < 2 {
		t.Fatalf("Expected multiple segments for %d-rune text, got %d",
			len([]rune(text)), len(segments))
	}

	for i, seg := range segments {
		if n := len([]rune(seg)); n > maxSpeechSegmentLen {
			t.Errorf("Segment %d has %d runes, limit is %d", i, n, maxSpeechSegmentLen)
		}
		if seg == "" {
			t.Errorf("Segment %d is empty", i)
		}
	}

	// No text lost: rejoining the segments restores the document.
	if got := strings.Join(segments, " "); got != text {
		t.Errorf("Rejoined segments differ from input\ngot:  %.80s...\nwant: %.80s...", got, text)
	}
}

func TestSplitSpeechTextPrefersSentenceBoundaries(t *testing.T) {
	text := "First sentence here. Second sentence here. Third sentence here."

	segments := SplitSpeechText(text, 25)
	for i, seg := range segments {
		if !strings.HasSuffix(seg, ".") {
			t.Errorf("Segment %d = %q, expected a sentence-boundary split", i, seg)
		}
	}
	if got := strings.Join(segments, " "); got != text {
		t.Errorf("Rejoined segments = %q, want %q", got, text)
	}
}

func TestSplitSpeechTextOverlongWord(t *testing.T) {
	word := strings.Repeat("a", 30)

	segments := SplitSpeechText(word, 10)
	if len(segments) != 3 {
		t.Fatalf("Expected 3 segments, got %d: %v", len(segments), segments)
	}
	for i, seg := range segments {
		if len([]rune(seg)) > 10 {
			t.Errorf("Segment %d exceeds limit: %q", i, seg)
		}
	}
}
