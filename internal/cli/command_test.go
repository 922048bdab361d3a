package cli

import (
	"strings"
	"testing"
)

func TestNewFlagsDefaults(t *testing.T) {
	flags := NewFlags()

	if flags.Owner != "local" {
		t.Errorf("Owner = %q, want %q", flags.Owner, "local")
	}
	if flags.AudioFormat != "mp3" {
		t.Errorf("AudioFormat = %q, want %q", flags.AudioFormat, "mp3")
	}
	if flags.Provider != "openai" {
		t.Errorf("Provider = %q, want %q", flags.Provider, "openai")
	}
	if flags.OpenAIModel != "gpt-4o-mini-tts" {
		t.Errorf("OpenAIModel = %q, want %q", flags.OpenAIModel, "gpt-4o-mini-tts")
	}
	if flags.OpenAIVoice != "alloy" {
		t.Errorf("OpenAIVoice = %q, want %q", flags.OpenAIVoice, "alloy")
	}
	if flags.OpenAISpeed != 0.95 {
		t.Errorf("OpenAISpeed = %v, want 0.95", flags.OpenAISpeed)
	}
	if flags.SkipAudio {
		t.Error("SkipAudio should default to false")
	}
}

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd.Use != "wordwand [file]" {
		t.Errorf("Use = %q, want %q", cmd.Use, "wordwand [file]")
	}
	if cmd.Version == "" {
		t.Error("Version should not be empty")
	}

	// Too many positional arguments should be rejected
	if err := cmd.Args(cmd, []string{"a.pdf", "b.pdf"}); err == nil {
		t.Error("expected error for two positional arguments")
	}
	if err := cmd.Args(cmd, []string{"a.pdf"}); err != nil {
		t.Errorf("unexpected error for one positional argument: %v", err)
	}
	if err := cmd.Args(cmd, nil); err != nil {
		t.Errorf("unexpected error for no positional arguments: %v", err)
	}
}

func TestRootCommandFlags(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	for _, name := range []string{
		"output", "staging", "db", "dict", "owner", "format",
		"batch", "skip-audio", "archive", "list-models", "json",
		"provider", "openai-model", "openai-voice", "openai-speed",
		"openai-instruction", "espeak-fallback",
	} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flag --%s not registered", name)
		}
	}

	if cmd.PersistentFlags().Lookup("config") == nil {
		t.Error("persistent flag --config not registered")
	}
}

func TestRootCommandParsesFlags(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	err := cmd.ParseFlags([]string{
		"--owner", "alice",
		"--format", "wav",
		"--provider", "espeak",
		"--skip-audio",
	})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if flags.Owner != "alice" {
		t.Errorf("Owner = %q, want %q", flags.Owner, "alice")
	}
	if flags.AudioFormat != "wav" {
		t.Errorf("AudioFormat = %q, want %q", flags.AudioFormat, "wav")
	}
	if flags.Provider != "espeak" {
		t.Errorf("Provider = %q, want %q", flags.Provider, "espeak")
	}
	if !flags.SkipAudio {
		t.Error("SkipAudio should be true")
	}
}

func TestDefaultStateDir(t *testing.T) {
	dir := DefaultStateDir()
	if !strings.Contains(dir, "wordwand") {
		t.Errorf("DefaultStateDir() = %q, should contain %q", dir, "wordwand")
	}
}
