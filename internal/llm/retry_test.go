package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// flakyProvider fails a fixed number of times before succeeding.
type flakyProvider struct {
	failures int
	calls    int
	err      error
}

func (f *flakyProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, f.err
	}
	return &Response{Text: "ok"}, nil
}

func (f *flakyProvider) ModelID() string { return "flaky" }

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestWithRetry_SucceedsAfterTransientFailure(t *testing.T) {
	inner := &flakyProvider{failures: 2, err: &ErrProviderUnavailable{Err: errors.New("down")}}
	p := WithRetry(inner, fastRetry(3))

	resp, err := p.Generate(context.Background(), Request{Prompt: "hello"})
	if err != nil {
		t.Fatalf("expected success after retries, got: %v", err)
	}
	if resp.Text != "ok" {
		t.Errorf("expected ok, got %q", resp.Text)
	}
	if inner.calls != 3 {
		t.Errorf("expected 3 calls, got %d", inner.calls)
	}
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: &ErrProviderUnavailable{Err: errors.New("down")}}
	p := WithRetry(inner, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{Prompt: "hello"})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if !IsUnavailable(err) {
		t.Errorf("expected unavailable error, got: %v", err)
	}
	if inner.calls != 3 {
		t.Errorf("expected 3 calls, got %d", inner.calls)
	}
}

func TestWithRetry_ContextCancellationStops(t *testing.T) {
	inner := &flakyProvider{failures: 10, err: context.Canceled}
	p := WithRetry(inner, fastRetry(5))

	_, err := p.Generate(context.Background(), Request{Prompt: "hello"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("expected a single call for context error, got %d", inner.calls)
	}
}

func TestIsUnavailable(t *testing.T) {
	if !IsUnavailable(&ErrProviderUnavailable{}) {
		t.Error("ErrProviderUnavailable should be unavailable")
	}
	if !IsUnavailable(&ErrRateLimit{Err: errors.New("429")}) {
		t.Error("ErrRateLimit should be unavailable")
	}
	if IsUnavailable(errors.New("boom")) {
		t.Error("plain errors should not be unavailable")
	}
}
