package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned when the declared file extension is
	// not in the supported set. The file content is never inspected.
	ErrUnsupportedFormat = errors.New("unsupported file type")

	// ErrExtractionFailed is returned when a supported document cannot be
	// decoded or read.
	ErrExtractionFailed = errors.New("failed to extract text")
)

// Extractor converts one document format into raw text.
type Extractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}

// Dispatcher routes a document to the extractor for its declared
// extension. Routing depends only on the lowercase suffix of the declared
// name, independent of the actual content.
type Dispatcher struct {
	image Extractor
	pdf   Extractor
	text  Extractor
}

// NewDispatcher creates a dispatcher with the default extractors: Tesseract
// OCR for images, go-fitz for PDFs and the UTF-8/Latin-1 reader for text.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		image: NewImageExtractor(NewTesseractEngine()),
		pdf:   &PDFExtractor{},
		text:  &TextExtractor{},
	}
}

// NewDispatcherWith creates a dispatcher with explicit extractors, used by
// tests to substitute the OCR and PDF backends.
func NewDispatcherWith(image, pdf, text Extractor) *Dispatcher {
	return &Dispatcher{image: image, pdf: pdf, text: text}
}

// Extract routes the document to exactly one extractor and returns its
// text, trimmed of leading and trailing whitespace.
func (d *Dispatcher) Extract(ctx context.Context, data []byte, declaredName string) (string, error) {
	ext := Extension(declaredName)

	var (
		text string
		err  error
	)
	switch ext {
	case "png", "jpg", "jpeg", "bmp", "tiff":
		text, err = d.image.Extract(ctx, data)
	case "pdf":
		text, err = d.pdf.Extract(ctx, data)
	case "txt":
		text, err = d.text.Extract(ctx, data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// supportedExtensions lists every extension the dispatcher routes.
var supportedExtensions = []string{"png", "jpg", "jpeg", "bmp", "tiff", "pdf", "txt"}

// Supported reports whether the declared name carries a supported
// extension.
func Supported(declaredName string) bool {
	ext := Extension(declaredName)
	for _, s := range supportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// SupportedExtensions returns the supported extensions for display in
// error messages and help text.
func SupportedExtensions() []string {
	out := make([]string, len(supportedExtensions))
	copy(out, supportedExtensions)
	return out
}

// Extension returns the lowercase suffix of a file name, without the dot.
func Extension(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}
