package audio

import (
	"encoding/binary"
	"testing"

	"github.com/sashabaranov/go-openai"
)

func TestSpeechResponseFormat(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		fallback string
		want     openai.SpeechResponseFormat
		wantFile string
	}{
		{"mp3 extension", "out.mp3", "wav", openai.SpeechResponseFormatMp3, "out.mp3"},
		{"wav extension", "out.wav", "mp3", openai.SpeechResponseFormatWav, "out.wav"},
		{"uppercase extension", "OUT.WAV", "mp3", openai.SpeechResponseFormatWav, "OUT.WAV"},
		{"opus extension", "out.opus", "mp3", openai.SpeechResponseFormatOpus, "out.opus"},
		{"no extension uses fallback mp3", "out", "mp3", openai.SpeechResponseFormatMp3, "out.mp3"},
		{"no extension uses fallback wav", "out", "wav", openai.SpeechResponseFormatWav, "out.wav"},
		{"no extension, empty fallback", "out", "", openai.SpeechResponseFormatMp3, "out.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, file := speechResponseFormat(tt.file, tt.fallback)
			if format != tt.want {
				t.Errorf("format = %q, want %q", format, tt.want)
			}
			if file != tt.wantFile {
				t.Errorf("file = %q, want %q", file, tt.wantFile)
			}
		})
	}
}

func TestPatchWAVSizes(t *testing.T) {
	// Canonical 44-byte header followed by 100 bytes of samples
	b := make([]byte, wavHeaderLen+100)
	copy(b[0:4], "RIFF")
	copy(b[8:12], "WAVE")
	copy(b[36:40], "data")

	patchWAVSizes(b)

	if got := binary.LittleEndian.Uint32(b[4:8]); got != uint32(len(b)-8) {
		t.Errorf("RIFF size = %d, want %d", got, len(b)-8)
	}
	if got := binary.LittleEndian.Uint32(b[40:44]); got != 100 {
		t.Errorf("data size = %d, want 100", got)
	}
}

func TestPatchWAVSizesIgnoresNonWAV(t *testing.T) {
	b := []byte("ID3 not a wav file at all, just some bytes to look at here")
	before := string(b)
	patchWAVSizes(b)
	if string(b) != before {
		t.Error("patchWAVSizes modified non-RIFF data")
	}
}

func TestESpeakVoice(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"explicit voice wins", Config{ESpeakVoice: "en+f2", Language: "en"}, "en+f2"},
		{"language as voice", Config{Language: "en-us"}, "en-us"},
		{"default", Config{}, "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := espeakVoice(&tt.config); got != tt.want {
				t.Errorf("espeakVoice = %q, want %q", got, tt.want)
			}
		})
	}
}
