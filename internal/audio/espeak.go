package audio

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// execCommand is swapped out by tests so the espeak-ng and ffmpeg paths
// can run without the binaries installed.
var execCommand = exec.Command

// ESpeakConfig holds configuration for espeak-ng audio generation
type ESpeakConfig struct {
	Voice string // Voice (e.g., "en", "en-us", "en+f2")
	Speed int    // Speech speed in words per minute (default: 150)
}

// DefaultESpeakConfig returns the default configuration for English speech
func DefaultESpeakConfig() *ESpeakConfig {
	return &ESpeakConfig{
		Voice: "en",
		Speed: 150,
	}
}

// ESpeak provides an interface to the espeak-ng text-to-speech engine
type ESpeak struct {
	config *ESpeakConfig
}

// NewESpeak creates a new ESpeak instance with the given configuration
func NewESpeak(config *ESpeakConfig) (*ESpeak, error) {
	if err := checkESpeakInstalled(); err != nil {
		return nil, err
	}

	if config == nil {
		config = DefaultESpeakConfig()
	}

	return &ESpeak{config: config}, nil
}

// GenerateWAV generates a WAV audio file for the given text. The text is
// fed on stdin, so document-length input never hits the argument length
// limit.
func (e *ESpeak) GenerateWAV(text string, outputFile string) error {
	if err := ValidateSpeechText(text); err != nil {
		return err
	}

	dir := filepath.Dir(outputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	args := []string{
		"-v", e.config.Voice,
		"-s", fmt.Sprintf("%d", e.config.Speed),
		"-w", outputFile,
		"--stdin",
	}

	cmd := execCommand("espeak-ng", args...)
	cmd.Stdin = strings.NewReader(text)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("espeak-ng failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}

// GenerateMP3 generates an MP3 file by converting espeak-ng WAV output
func (e *ESpeak) GenerateMP3(text string, outputFile string) error {
	tempWAV := strings.TrimSuffix(outputFile, filepath.Ext(outputFile)) + "_temp.wav"

	if err := e.GenerateWAV(text, tempWAV); err != nil {
		return err
	}
	defer os.Remove(tempWAV)

	return convertWAVToMP3(tempWAV, outputFile)
}

// convertWAVToMP3 converts a WAV file to MP3 using ffmpeg
func convertWAVToMP3(wavFile, mp3File string) error {
	if err := execCommand("ffmpeg", "-version").Run(); err != nil {
		return fmt.Errorf("ffmpeg is not installed or not in PATH: %w", err)
	}

	cmd := execCommand("ffmpeg", "-i", wavFile, "-acodec", "mp3", "-y", mp3File)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg conversion failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}

// checkESpeakInstalled verifies that espeak-ng is available on the system
func checkESpeakInstalled() error {
	cmd := execCommand("espeak-ng", "--version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("espeak-ng is not installed or not in PATH: %w", err)
	}
	return nil
}
