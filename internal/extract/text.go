package extract

import (
	"context"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// TextExtractor reads plain text uploads. Content that is not valid UTF-8
// is decoded as Latin-1; no other encodings are attempted.
type TextExtractor struct{}

// Extract returns the decoded file content.
func (x *TextExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: could not decode text file: %v", ErrExtractionFailed, err)
	}
	return string(decoded), nil
}
