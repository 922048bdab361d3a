package extract

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"

	_ "image/jpeg"

	"github.com/otiai10/gosseract/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// OCREngine recognizes text in an encoded image.
type OCREngine interface {
	Recognize(ctx context.Context, imageBytes []byte) (string, error)
}

// TesseractEngine runs OCR through the gosseract client. A fresh client is
// created per call so concurrent pipeline runs never share one.
type TesseractEngine struct {
	clientFactory func() *gosseract.Client
	language      string
}

// NewTesseractEngine constructs a Tesseract-backed OCR engine for English.
func NewTesseractEngine() *TesseractEngine {
	return &TesseractEngine{
		clientFactory: gosseract.NewClient,
		language:      "eng",
	}
}

// Recognize performs OCR on a single encoded image.
func (e *TesseractEngine) Recognize(ctx context.Context, imageBytes []byte) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(imageBytes); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	if err := c.SetLanguage(e.language); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}
	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	return text, nil
}

// ImageExtractor decodes an uploaded image, converts it to grayscale and
// hands the result to an OCR engine.
type ImageExtractor struct {
	engine OCREngine
}

// NewImageExtractor creates an image extractor backed by the given engine.
func NewImageExtractor(engine OCREngine) *ImageExtractor {
	return &ImageExtractor{engine: engine}
}

// Extract decodes the image and recognizes its text. An undecodable image
// is an extraction failure; OCR errors are too.
func (x *ImageExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: could not read image file: %v", ErrExtractionFailed, err)
	}

	grayPNG, err := encodeGrayscale(img)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	text, err := x.engine.Recognize(ctx, grayPNG)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	return text, nil
}

// encodeGrayscale converts any decoded image to 8-bit grayscale and
// re-encodes it as PNG for the OCR engine.
func encodeGrayscale(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return nil, fmt.Errorf("encode grayscale image: %w", err)
	}
	return buf.Bytes(), nil
}
