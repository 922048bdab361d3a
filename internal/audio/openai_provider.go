package audio

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// maxSpeechSegmentLen is the per-request input ceiling of the OpenAI
// speech endpoint. Longer text is synthesized in segments.
const maxSpeechSegmentLen = 4096

// wavHeaderLen is the canonical RIFF/WAVE header size produced by the
// speech endpoint.
const wavHeaderLen = 44

// OpenAIProvider implements Provider interface for OpenAI TTS
type OpenAIProvider struct {
	client      *openai.Client
	config      *Config
	cacheDir    string
	enableCache bool
}

// NewOpenAIProvider creates a new OpenAI TTS provider
func NewOpenAIProvider(config *Config) (Provider, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	provider := &OpenAIProvider{
		client:      openai.NewClient(config.OpenAIKey),
		config:      config,
		cacheDir:    config.CacheDir,
		enableCache: config.EnableCache,
	}

	if provider.enableCache && provider.cacheDir != "" {
		if err := os.MkdirAll(provider.cacheDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	return provider, nil
}

// GenerateAudio generates audio using OpenAI TTS. Text longer than the
// endpoint's per-request limit is split at sentence boundaries and the
// segment audio is concatenated into one file.
func (p *OpenAIProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	if err := ValidateSpeechText(text); err != nil {
		return err
	}

	format, outputFile := speechResponseFormat(outputFile, p.config.OutputFormat)

	if p.enableCache {
		cacheFile := p.getCacheFilePath(text, format)
		if _, err := os.Stat(cacheFile); err == nil {
			return p.copyFile(cacheFile, outputFile)
		}
	}

	segments := SplitSpeechText(text, maxSpeechSegmentLen)

	var audio bytes.Buffer
	for i, segment := range segments {
		data, err := p.synthesizeSegment(ctx, segment, format)
		if err != nil {
			return err
		}
		// Subsequent WAV segments contribute samples only; the first
		// segment's header is patched below to cover them.
		if i > 0 && format == openai.SpeechResponseFormatWav && len(data) > wavHeaderLen {
			data = data[wavHeaderLen:]
		}
		audio.Write(data)
	}
	if len(segments) > 1 && format == openai.SpeechResponseFormatWav {
		patchWAVSizes(audio.Bytes())
	}

	dir := filepath.Dir(outputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputFile, audio.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	if p.enableCache {
		cacheFile := p.getCacheFilePath(text, format)
		_ = p.copyFile(outputFile, cacheFile) // Ignore cache errors
	}

	return nil
}

// synthesizeSegment runs one speech request and returns the audio bytes.
func (p *OpenAIProvider) synthesizeSegment(ctx context.Context, text string, format openai.SpeechResponseFormat) ([]byte, error) {
	req := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(p.config.OpenAIModel),
		Input:          text,
		Voice:          openai.SpeechVoice(p.config.OpenAIVoice),
		Speed:          p.config.OpenAISpeed,
		ResponseFormat: format,
	}

	// Voice instructions are only understood by the gpt-4o-mini models.
	if p.config.OpenAIInstruction != "" && strings.HasPrefix(p.config.OpenAIModel, "gpt-4o-mini") {
		req.Instructions = p.config.OpenAIInstruction
	}

	response, err := p.client.CreateSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("OpenAI TTS API error: %w", err)
	}
	defer response.Close()

	data, err := io.ReadAll(response)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio response: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no audio data received from OpenAI")
	}
	return data, nil
}

// speechResponseFormat maps the output file extension to a response
// format. Without a recognized extension, the configured fallback format
// decides and its extension is appended to the file name.
func speechResponseFormat(outputFile, fallback string) (openai.SpeechResponseFormat, string) {
	switch strings.ToLower(filepath.Ext(outputFile)) {
	case ".mp3":
		return openai.SpeechResponseFormatMp3, outputFile
	case ".wav":
		return openai.SpeechResponseFormatWav, outputFile
	case ".opus":
		return openai.SpeechResponseFormatOpus, outputFile
	case ".aac":
		return openai.SpeechResponseFormatAac, outputFile
	case ".flac":
		return openai.SpeechResponseFormatFlac, outputFile
	}

	if fallback == "wav" {
		return openai.SpeechResponseFormatWav, outputFile + ".wav"
	}
	return openai.SpeechResponseFormatMp3, outputFile + ".mp3"
}

// patchWAVSizes fixes the RIFF and data chunk sizes after concatenating
// segments, assuming the canonical 44-byte header layout.
func patchWAVSizes(b []byte) {
	if len(b) < wavHeaderLen || string(b[0:4]) != "RIFF" {
		return
	}
	binary.LittleEndian.PutUint32(b[4:8], uint32(len(b)-8))
	if string(b[36:40]) == "data" {
		binary.LittleEndian.PutUint32(b[40:44], uint32(len(b)-wavHeaderLen))
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the OpenAI API is accessible
func (p *OpenAIProvider) IsAvailable() error {
	if p.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}

// getCacheFilePath generates a cache file path for the given text
func (p *OpenAIProvider) getCacheFilePath(text string, format openai.SpeechResponseFormat) string {
	h := md5.New()
	h.Write([]byte(text))
	h.Write([]byte(p.config.OpenAIModel))
	h.Write([]byte(p.config.OpenAIVoice))
	h.Write([]byte(format))
	h.Write([]byte(fmt.Sprintf("%.2f", p.config.OpenAISpeed)))
	if p.config.OpenAIInstruction != "" {
		h.Write([]byte(p.config.OpenAIInstruction))
	}
	hash := hex.EncodeToString(h.Sum(nil))

	// First 2 chars as subdirectory for better file system performance
	return filepath.Join(p.cacheDir, hash[:2], hash[2:]+"."+string(format))
}

// copyFile copies a file from src to dst
func (p *OpenAIProvider) copyFile(src, dst string) error {
	dir := filepath.Dir(dst)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	source, err := os.Open(src)
	if err != nil {
		return err
	}
	defer source.Close()

	destination, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destination.Close()

	_, err = io.Copy(destination, source)
	return err
}
