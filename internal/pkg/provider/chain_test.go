package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name   string
	result string
	err    error
	delay  time.Duration
	calls  int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Attempt(ctx context.Context, _ struct{}) (string, error) {
	s.calls++
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if s.err != nil {
		return "", s.err
	}
	return s.result, nil
}

func TestChainReturnsFirstSuccess(t *testing.T) {
	first := &stubProvider{name: "first", result: "from-first"}
	second := &stubProvider{name: "second", result: "from-second"}
	chain := NewChain[struct{}, string](time.Second, first, second)

	result, ok := chain.Resolve(context.Background(), struct{}{})

	require.True(t, ok)
	assert.Equal(t, "from-first", result)
	assert.Equal(t, 0, second.calls, "second provider should not be tried")
}

func TestChainSkipsFailingProvider(t *testing.T) {
	failing := &stubProvider{name: "failing", err: errors.New("boom")}
	working := &stubProvider{name: "working", result: "ok"}
	chain := NewChain[struct{}, string](time.Second, failing, working)

	result, ok := chain.Resolve(context.Background(), struct{}{})

	require.True(t, ok)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, failing.calls)
}

func TestChainSkipsOptedOutProvider(t *testing.T) {
	unconfigured := &stubProvider{name: "unconfigured", err: ErrUnavailable}
	working := &stubProvider{name: "working", result: "ok"}
	chain := NewChain[struct{}, string](time.Second, unconfigured, working)

	result, ok := chain.Resolve(context.Background(), struct{}{})

	require.True(t, ok)
	assert.Equal(t, "ok", result)
}

func TestChainExhaustedReturnsFalse(t *testing.T) {
	a := &stubProvider{name: "a", err: errors.New("down")}
	b := &stubProvider{name: "b", err: ErrUnavailable}
	chain := NewChain[struct{}, string](time.Second, a, b)

	result, ok := chain.Resolve(context.Background(), struct{}{})

	assert.False(t, ok)
	assert.Empty(t, result)
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
}

func TestChainTimesOutSlowProviderAndContinues(t *testing.T) {
	slow := &stubProvider{name: "slow", result: "never", delay: 500 * time.Millisecond}
	fast := &stubProvider{name: "fast", result: "fast"}
	chain := NewChain[struct{}, string](20*time.Millisecond, slow, fast)

	start := time.Now()
	result, ok := chain.Resolve(context.Background(), struct{}{})

	require.True(t, ok)
	assert.Equal(t, "fast", result)
	assert.Less(t, time.Since(start), 400*time.Millisecond, "timed-out attempt must not delay the next provider")
}
