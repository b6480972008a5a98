package llm

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// RetryProvider decorates a provider with exponential-backoff retries on
// transient failures. Context cancellation ends the retry loop immediately.
type RetryProvider struct {
	inner      LLMProvider
	maxTries   uint
	maxElapsed time.Duration
}

var _ LLMProvider = &RetryProvider{}

func NewRetryProvider(inner LLMProvider, maxTries int) *RetryProvider {
	if maxTries < 1 {
		maxTries = 1
	}
	return &RetryProvider{
		inner:      inner,
		maxTries:   uint(maxTries),
		maxElapsed: 2 * time.Minute,
	}
}

func (r *RetryProvider) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	operation := func() (string, error) {
		return r.inner.Chat(ctx, history, options...)
	}
	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(r.maxTries),
		backoff.WithMaxElapsedTime(r.maxElapsed),
	)
}

func (r *RetryProvider) Generate(ctx context.Context, prompt string, options ...Option) (string, error) {
	return r.Chat(ctx, []Message{{Role: "user", Content: prompt}}, options...)
}
