package pipeline

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/wordwand/internal"
	"codeberg.org/snonux/wordwand/internal/analyze"
	"codeberg.org/snonux/wordwand/internal/audio"
	"codeberg.org/snonux/wordwand/internal/lexicon"
	"codeberg.org/snonux/wordwand/internal/store"
)

const (
	// MaxUploadBytes is the upload size ceiling, checked before anything
	// is written to disk.
	MaxUploadBytes = 10 * 1024 * 1024

	// minTextLen is the minimum normalized text length worth processing.
	minTextLen = 10
)

// Extractor is the dispatcher contract consumed by the pipeline.
type Extractor interface {
	Extract(ctx context.Context, data []byte, declaredName string) (string, error)
}

// Upload is one document handed to the pipeline.
type Upload struct {
	FileName     string
	Data         []byte
	Owner        string
	DeclaredSize int64 // zero means "use len(Data)"
}

// Result is returned on success. HardWords lists every flagged
// occurrence in document order; UniqueHardWords is its sorted,
// deduplicated form and SyllableMap's key set is exactly
// UniqueHardWords.
type Result struct {
	RecordID          int64
	Text              string
	AudioRef          string
	HardWords         []string
	UniqueHardWords   []string
	SyllableMap       map[string]string
	ProcessingSeconds float64
}

// Config wires the pipeline's collaborators.
type Config struct {
	Extractor   Extractor
	Lexicon     *lexicon.Lexicon
	Provider    audio.Provider
	Store       store.Store
	StagingDir  string
	AudioDir    string
	AudioFormat string // "mp3" or "wav"
	SkipAudio   bool   // record text without audio instead of synthesizing
	Logger      *zerolog.Logger
}

// Processor runs the document-to-speech pipeline. Safe for concurrent use:
// all mutable state is request-scoped, and generated file names carry
// random suffixes so runs sharing the staging and audio directories never
// collide.
type Processor struct {
	extractor   Extractor
	lex         *lexicon.Lexicon
	provider    audio.Provider
	store       store.Store
	stagingDir  string
	audioDir    string
	audioFormat string
	skipAudio   bool
	logger      zerolog.Logger
}

// New creates a pipeline processor
func New(cfg Config) *Processor {
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	format := cfg.AudioFormat
	if format == "" {
		format = "mp3"
	}
	return &Processor{
		extractor:   cfg.Extractor,
		lex:         cfg.Lexicon,
		provider:    cfg.Provider,
		store:       cfg.Store,
		stagingDir:  cfg.StagingDir,
		audioDir:    cfg.AudioDir,
		audioFormat: format,
		skipAudio:   cfg.SkipAudio,
		logger:      logger,
	}
}

// Process runs the whole pipeline for one upload. On success exactly one
// record has been persisted; on any failure no record exists and the
// staged upload has been removed.
func (p *Processor) Process(ctx context.Context, up Upload) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().Interface("panic", r).Str("file", up.FileName).
				Msg("pipeline panic recovered")
			res = nil
			err = fmt.Errorf("%w: unexpected failure", ErrInternal)
		}
	}()

	size := up.DeclaredSize
	if size == 0 {
		size = int64(len(up.Data))
	}
	if size > MaxUploadBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, size)
	}

	stagedPath, err := p.stage(up)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	defer func() {
		if rmErr := os.Remove(stagedPath); rmErr != nil && !os.IsNotExist(rmErr) {
			p.logger.Warn().Err(rmErr).Str("path", stagedPath).
				Msg("failed to remove staged upload")
		}
	}()

	start := time.Now()

	data, err := os.ReadFile(stagedPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	raw, err := p.extractor.Extract(ctx, data, up.FileName)
	if err != nil {
		return nil, err
	}

	text := analyze.Normalize(raw)
	if len([]rune(text)) < minTextLen {
		return nil, fmt.Errorf("%w: %d characters", ErrEmptyContent, len([]rune(text)))
	}

	audioRef := ""
	if !p.skipAudio {
		audioRef, err = p.synthesize(ctx, text, up.FileName)
		if err != nil {
			return nil, err
		}
	}

	hardWords, uniqueWords, syllables := p.analyzeText(text)
	seconds := roundSeconds(time.Since(start))

	rec := &store.Record{
		Owner:             up.Owner,
		FileType:          extension(up.FileName),
		ExtractedText:     text,
		AudioFile:         audioRef,
		HardWords:         uniqueWords,
		Syllables:         syllables,
		ProcessingSeconds: seconds,
		CreatedAt:         time.Now(),
	}
	id, err := p.store.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	p.logger.Info().Int64("record", id).Str("file", up.FileName).
		Int("hard_words", len(uniqueWords)).Float64("seconds", seconds).
		Msg("document processed")

	return &Result{
		RecordID:          id,
		Text:              text,
		AudioRef:          audioRef,
		HardWords:         hardWords,
		UniqueHardWords:   uniqueWords,
		SyllableMap:       syllables,
		ProcessingSeconds: seconds,
	}, nil
}

// ProcessFile reads a document from disk and runs the pipeline on it.
func (p *Processor) ProcessFile(ctx context.Context, path, owner string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if info.Size() > MaxUploadBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return p.Process(ctx, Upload{
		FileName:     filepath.Base(path),
		Data:         data,
		Owner:        owner,
		DeclaredSize: info.Size(),
	})
}

// stage writes the upload to a collision-safe path inside the staging
// directory. The name combines a random suffix with the sanitized original
// name, never the raw name alone.
func (p *Processor) stage(up Upload) (string, error) {
	if err := os.MkdirAll(p.stagingDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}

	name := fmt.Sprintf("upload_%s_%s", internal.RandomSuffix(), internal.SanitizeFilename(up.FileName))
	path := filepath.Join(p.stagingDir, name)
	if err := os.WriteFile(path, up.Data, 0644); err != nil {
		// A partially written file must not outlive the failed attempt.
		os.Remove(path)
		return "", fmt.Errorf("failed to stage upload: %w", err)
	}
	return path, nil
}

// synthesize generates the audio artifact in the durable audio directory
// and returns its file name. The suffix is drawn independently from the
// staging name.
func (p *Processor) synthesize(ctx context.Context, text, fileName string) (string, error) {
	if err := os.MkdirAll(p.audioDir, 0755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInternal, err)
	}

	name := fmt.Sprintf("speech_%s_%s.%s",
		internal.SanitizeFilename(internal.FileStem(fileName)),
		internal.RandomSuffix(), p.audioFormat)
	path := filepath.Join(p.audioDir, name)

	if err := p.provider.GenerateAudio(ctx, text, path); err != nil {
		os.Remove(path) // drop any partial artifact
		return "", fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}
	return name, nil
}

// analyzeText flags hard words in document order, derives the sorted
// unique list and builds the syllable map. All output is lowercase and
// the map's key set matches the unique list exactly.
func (p *Processor) analyzeText(text string) ([]string, []string, map[string]string) {
	seen := make(map[string]struct{})
	hardWords := []string{}
	uniqueWords := []string{}
	for _, token := range analyze.Tokenize(text) {
		word := strings.ToLower(token)
		if !analyze.IsHard(p.lex, word) {
			continue
		}
		hardWords = append(hardWords, word)
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		uniqueWords = append(uniqueWords, word)
	}
	sort.Strings(uniqueWords)

	syllables := make(map[string]string, len(uniqueWords))
	for _, word := range uniqueWords {
		syllables[word] = analyze.Syllabify(p.lex, word)
	}
	return hardWords, uniqueWords, syllables
}

func roundSeconds(d time.Duration) float64 {
	s := d.Seconds()
	if s < 0 {
		return 0
	}
	return math.Round(s*100) / 100
}

func extension(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	return strings.ToLower(ext)
}
