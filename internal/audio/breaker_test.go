package audio

import (
	"context"
	"errors"
	"testing"
)

func TestBreakerPassesThrough(t *testing.T) {
	inner := &mockProvider{name: "inner"}
	p := NewBreakerProvider(inner)

	if err := p.GenerateAudio(context.Background(), "hello", "out.mp3"); err != nil {
		t.Errorf("GenerateAudio failed: %v", err)
	}
	if inner.generateCalls != 1 {
		t.Errorf("Inner called %d times, want 1", inner.generateCalls)
	}
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	inner := &mockProvider{name: "inner", generateErr: errors.New("backend down")}
	p := NewBreakerProvider(inner)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if err := p.GenerateAudio(ctx, "hello", "out.mp3"); err == nil {
			t.Fatalf("Call %d should have failed", i+1)
		}
	}

	if inner.generateCalls != 3 {
		t.Fatalf("Inner called %d times before opening, want 3", inner.generateCalls)
	}

	// Breaker is open now: the backend must not be called again.
	if err := p.GenerateAudio(ctx, "hello", "out.mp3"); err == nil {
		t.Error("Expected fast failure while breaker is open")
	}
	if inner.generateCalls != 3 {
		t.Errorf("Inner called %d times after opening, want still 3", inner.generateCalls)
	}

	if err := p.IsAvailable(); err == nil {
		t.Error("IsAvailable should report the open breaker")
	}
}
