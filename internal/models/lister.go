// Package models lists the OpenAI models usable for speech synthesis
// with the configured API key.
package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI speech models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// ListSpeechModels prints the TTS-capable models available to the key
func (l *Lister) ListSpeechModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .wordwand.yaml")
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	var speechModels []string
	for _, model := range models.Models {
		id := model.ID
		if strings.Contains(id, "tts") || strings.Contains(id, "audio") {
			speechModels = append(speechModels, id)
		}
	}
	sort.Strings(speechModels)

	if len(speechModels) == 0 {
		fmt.Println("No speech models available for this API key.")
		return nil
	}

	fmt.Println("Available speech models:")
	for _, id := range speechModels {
		fmt.Printf("  %s\n", id)
	}
	return nil
}
