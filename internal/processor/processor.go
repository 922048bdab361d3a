package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/wordwand/internal/audio"
	"codeberg.org/snonux/wordwand/internal/batch"
	"codeberg.org/snonux/wordwand/internal/cli"
	"codeberg.org/snonux/wordwand/internal/extract"
	"codeberg.org/snonux/wordwand/internal/lexicon"
	"codeberg.org/snonux/wordwand/internal/pipeline"
	"codeberg.org/snonux/wordwand/internal/store"
)

// Processor handles the main document processing logic
type Processor struct {
	flags  *cli.Flags
	pipe   *pipeline.Processor
	st     *store.SQLiteStore
	logger zerolog.Logger
}

// NewProcessor creates a document processor from the command line flags.
// Call Close when done to release the database.
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	lex, err := lexicon.Load(flags.DictPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load pronunciation dictionary: %w", err)
	}

	provider, err := buildProvider(flags)
	if err != nil {
		return nil, err
	}

	for _, dir := range []string{flags.StagingDir, flags.AudioDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	st, err := store.Open(flags.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pipe := pipeline.New(pipeline.Config{
		Extractor:   extract.NewDispatcher(),
		Lexicon:     lex,
		Provider:    provider,
		Store:       st,
		StagingDir:  flags.StagingDir,
		AudioDir:    flags.AudioDir,
		AudioFormat: flags.AudioFormat,
		SkipAudio:   flags.SkipAudio,
		Logger:      &logger,
	})

	return &Processor{
		flags:  flags,
		pipe:   pipe,
		st:     st,
		logger: logger,
	}, nil
}

// Close releases the underlying database
func (p *Processor) Close() error {
	return p.st.Close()
}

// ProcessSingleFile processes one document from the command line
func (p *Processor) ProcessSingleFile(path string) error {
	if !extract.Supported(path) {
		return fmt.Errorf("unsupported file type: %s (supported: %s)",
			filepath.Ext(path), strings.Join(extract.SupportedExtensions(), ", "))
	}

	fmt.Printf("\nProcessing: %s\n", path)

	res, err := p.pipe.ProcessFile(context.Background(), path, p.flags.Owner)
	if err != nil {
		// The wrapped cause may carry internal paths; it goes to the log
		// only, the user sees the translated message.
		p.logger.Error().Err(err).Str("file", path).Msg("processing failed")
		return errors.New(pipeline.UserMessage(err))
	}

	return p.printResult(path, res)
}

// ProcessBatch processes multiple documents from a batch file
func (p *Processor) ProcessBatch() error {
	paths, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	processedCount := 0
	errorCount := 0

	for i, path := range paths {
		fmt.Printf("\nProcessing %d/%d: %s\n", i+1, len(paths), path)

		res, err := p.pipe.ProcessFile(context.Background(), path, p.flags.Owner)
		if err != nil {
			p.logger.Error().Err(err).Str("file", path).Msg("processing failed")
			fmt.Fprintf(os.Stderr, "Error processing '%s': %s\n", path, pipeline.UserMessage(err))
			errorCount++
			// Continue with next document
			continue
		}
		if err := p.printResult(path, res); err != nil {
			return err
		}
		processedCount++
	}

	// Print summary
	fmt.Printf("\n=== Batch Processing Summary ===\n")
	fmt.Printf("Total documents: %d\n", len(paths))
	fmt.Printf("Processed: %d\n", processedCount)
	if errorCount > 0 {
		fmt.Printf("Errors: %d\n", errorCount)
	}
	fmt.Printf("================================\n")

	return nil
}

func (p *Processor) printResult(path string, res *pipeline.Result) error {
	if p.flags.JSONOutput {
		out := struct {
			RecordID          int64             `json:"record_id"`
			File              string            `json:"file"`
			Text              string            `json:"text"`
			AudioFile         string            `json:"audio_file,omitempty"`
			HardWords         []string          `json:"hard_words"`
			UniqueHardWords   []string          `json:"unique_hard_words"`
			Syllables         map[string]string `json:"syllables"`
			ProcessingSeconds float64           `json:"processing_seconds"`
		}{
			RecordID:          res.RecordID,
			File:              path,
			Text:              res.Text,
			AudioFile:         res.AudioRef,
			HardWords:         res.HardWords,
			UniqueHardWords:   res.UniqueHardWords,
			Syllables:         res.SyllableMap,
			ProcessingSeconds: res.ProcessingSeconds,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("  Record: #%d (%.2fs)\n", res.RecordID, res.ProcessingSeconds)
	if res.AudioRef != "" {
		fmt.Printf("  Audio: %s\n", filepath.Join(p.flags.AudioDir, res.AudioRef))
	}
	if len(res.UniqueHardWords) == 0 {
		fmt.Printf("  No hard words found\n")
		return nil
	}
	fmt.Printf("  Hard words (%d):\n", len(res.UniqueHardWords))
	for _, word := range res.UniqueHardWords {
		fmt.Printf("    %-20s %s\n", word, res.SyllableMap[word])
	}
	return nil
}

func buildProvider(flags *cli.Flags) (audio.Provider, error) {
	cfg := audio.DefaultProviderConfig()
	cfg.Provider = flags.Provider
	cfg.OutputFormat = flags.AudioFormat
	cfg.OpenAIKey = cli.GetOpenAIKey()
	cfg.OpenAIModel = flags.OpenAIModel
	cfg.OpenAIVoice = flags.OpenAIVoice
	cfg.OpenAISpeed = flags.OpenAISpeed
	if flags.OpenAIInstruction != "" {
		cfg.OpenAIInstruction = flags.OpenAIInstruction
	}

	primary, err := audio.NewProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio provider: %w", err)
	}

	var provider audio.Provider = audio.NewBreakerProvider(primary)

	if flags.ESpeakFallback && flags.Provider != "espeak" {
		fallback, err := audio.NewESpeakProvider(&audio.ESpeakConfig{
			Voice: cfg.ESpeakVoice,
			Speed: cfg.ESpeakSpeed,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create espeak fallback: %w", err)
		}
		provider = audio.NewProviderWithFallback(provider, fallback)
	}

	return provider, nil
}
