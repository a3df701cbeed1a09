// Package provider implements a generic fallback chain over ordered external
// data sources. Each provider is tried in turn until one returns a usable
// result; a provider may opt out (missing credentials, provider-reported
// failure) or fail outright, and either way the chain moves on.
package provider

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// ErrUnavailable signals that a provider cannot serve the request right now
// (unconfigured, quota exhausted, provider-side failure flag). The chain
// treats it the same as any other error but logs it at a lower level.
var ErrUnavailable = errors.New("provider unavailable")

// DefaultAttemptTimeout bounds a single provider attempt so one hanging
// upstream cannot starve the rest of the chain.
const DefaultAttemptTimeout = 8 * time.Second

// Provider is a single external source. Attempt must honor ctx cancellation.
type Provider[I, R any] interface {
	Name() string
	Attempt(ctx context.Context, input I) (R, error)
}

// Chain tries providers strictly in the configured order.
type Chain[I, R any] struct {
	providers []Provider[I, R]
	timeout   time.Duration
}

func NewChain[I, R any](timeout time.Duration, providers ...Provider[I, R]) *Chain[I, R] {
	if timeout <= 0 {
		timeout = DefaultAttemptTimeout
	}
	return &Chain[I, R]{providers: providers, timeout: timeout}
}

// Resolve returns the first usable result and true, or the zero value and
// false once every provider has been exhausted. Provider failures never
// propagate to the caller.
func (c *Chain[I, R]) Resolve(ctx context.Context, input I) (R, bool) {
	for _, p := range c.providers {
		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		result, err := p.Attempt(attemptCtx, input)
		cancel()

		if err != nil {
			if errors.Is(err, ErrUnavailable) {
				slog.Debug("provider opted out", "provider", p.Name())
			} else {
				slog.Warn("provider attempt failed", "provider", p.Name(), "error", err)
			}
			continue
		}
		return result, true
	}

	var zero R
	return zero, false
}
