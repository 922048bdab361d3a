package audio

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerProvider wraps a Provider with a circuit breaker so that a
// misbehaving synthesis backend fails fast instead of stalling every
// request on its timeout.
type BreakerProvider struct {
	inner   Provider
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps the provider with a circuit breaker that opens
// after three consecutive synthesis failures and probes again after 30
// seconds.
func NewBreakerProvider(inner Provider) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:    fmt.Sprintf("tts-%s", inner.Name()),
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}
	return &BreakerProvider{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// GenerateAudio runs the wrapped provider through the breaker. While the
// breaker is open the call fails immediately without touching the backend.
func (p *BreakerProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	_, err := p.breaker.Execute(func() (interface{}, error) {
		return nil, p.inner.GenerateAudio(ctx, text, outputFile)
	})
	if err != nil {
		return fmt.Errorf("speech synthesis failed: %w", err)
	}
	return nil
}

// Name returns the provider name
func (p *BreakerProvider) Name() string {
	return fmt.Sprintf("%s (circuit breaker)", p.inner.Name())
}

// IsAvailable checks the wrapped provider and the breaker state
func (p *BreakerProvider) IsAvailable() error {
	if p.breaker.State() == gobreaker.StateOpen {
		return fmt.Errorf("circuit breaker is open for %s", p.inner.Name())
	}
	return p.inner.IsAvailable()
}
