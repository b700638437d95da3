package llm

import (
	"context"
	"errors"
	"log"
	"net"
	"strings"
	"time"
)

const (
	retryBaseDelay = 300 * time.Millisecond
	retryAttempts  = 3

	// DefaultCallTimeout bounds a single model call.
	DefaultCallTimeout = 60 * time.Second
)

type retryingClient struct {
	base    Client
	timeout time.Duration
}

// WithRetry wraps a client with a per-call timeout and a bounded
// exponential-backoff retry for transient failures. Malformed output is not
// retried here; that failure class belongs to DecodeObject.
func WithRetry(base Client, timeout time.Duration) Client {
	if base == nil {
		return nil
	}
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	return retryingClient{base: base, timeout: timeout}
}

func (r retryingClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	delay := retryBaseDelay
	for attempt := 1; attempt <= retryAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		out, err := r.base.GenerateJSON(callCtx, prompt)
		cancel()
		if err == nil {
			return out, nil
		}
		lastErr = err
		if !shouldRetry(err) || attempt == retryAttempts {
			break
		}
		log.Printf("llm retry attempt=%d error=%s", attempt, err)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
		delay *= 2
	}
	return "", lastErr
}

func shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "http status 5") || strings.Contains(msg, "unavailable") || strings.Contains(msg, "internal error") {
		return true
	}
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline") {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "eof") {
		return true
	}

	return false
}
