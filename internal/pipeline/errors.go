package pipeline

import (
	"errors"

	"codeberg.org/snonux/wordwand/internal/extract"
)

var (
	// ErrPayloadTooLarge is returned before anything touches the disk.
	ErrPayloadTooLarge = errors.New("file size too large")

	// ErrEmptyContent means extraction succeeded but yielded too little
	// text to be worth reading aloud.
	ErrEmptyContent = errors.New("no readable text found")

	// ErrSynthesisFailed wraps any speech synthesis failure.
	ErrSynthesisFailed = errors.New("speech synthesis failed")

	// ErrPersistenceFailed wraps record store failures.
	ErrPersistenceFailed = errors.New("failed to save processing record")

	// ErrInternal covers anything that escaped the known taxonomy.
	ErrInternal = errors.New("internal processing error")
)

// UserMessage translates a pipeline error into a single caller-facing
// message. Internal paths and wrapped details are never exposed.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPayloadTooLarge):
		return "File size too large. Maximum size is 10MB."
	case errors.Is(err, extract.ErrUnsupportedFormat):
		return "Unsupported file type."
	case errors.Is(err, extract.ErrExtractionFailed):
		return "Could not read the uploaded file."
	case errors.Is(err, ErrEmptyContent):
		return "No readable text found."
	case errors.Is(err, ErrSynthesisFailed):
		return "Could not generate audio for this document."
	case errors.Is(err, ErrPersistenceFailed):
		return "Could not save the processing result."
	default:
		return "Error processing file."
	}
}
