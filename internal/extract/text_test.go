package extract

import (
	"context"
	"testing"
)

func TestTextExtractorUTF8(t *testing.T) {
	x := &TextExtractor{}

	got, err := x.Extract(context.Background(), []byte("Hello, wörld"))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got != "Hello, wörld" {
		t.Errorf("Extract = %q, want %q", got, "Hello, wörld")
	}
}

func TestTextExtractorLatin1Fallback(t *testing.T) {
	x := &TextExtractor{}

	// "café" in Latin-1: 0xE9 alone is invalid UTF-8.
	input := []byte{'c', 'a', 'f', 0xE9}
	got, err := x.Extract(context.Background(), input)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got != "café" {
		t.Errorf("Extract = %q, want %q", got, "café")
	}
}

func TestTextExtractorEmpty(t *testing.T) {
	x := &TextExtractor{}

	got, err := x.Extract(context.Background(), nil)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got != "" {
		t.Errorf("Extract = %q, want empty", got)
	}
}
