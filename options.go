package mailfleet

import (
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// Option configures the dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the dispatcher logger.
// If nil, logging stays disabled.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithDialFunc overrides how the mail session is opened. Used by tests and
// by callers that bring their own transport.
func WithDialFunc(dial DialFunc) Option {
	return func(d *Dispatcher) {
		if dial != nil {
			d.dial = dial
		}
	}
}

// WithSendInterval sets the minimum spacing between two sends.
// Defaults to DefaultSendInterval; non-positive values are ignored.
func WithSendInterval(interval time.Duration) Option {
	return func(d *Dispatcher) {
		if interval > 0 {
			d.limiter = rate.NewLimiter(rate.Every(interval), 1)
		}
	}
}

// WithLimiter replaces the pacing limiter entirely, for callers that share
// one limiter across dispatchers or need a different bucket shape.
func WithLimiter(limiter *rate.Limiter) Option {
	return func(d *Dispatcher) {
		if limiter != nil {
			d.limiter = limiter
		}
	}
}

// WithProgress sets the per-attempt progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(d *Dispatcher) {
		d.progress = fn
	}
}

// WithBodyFilter post-processes every rendered HTML body before it is sent,
// e.g. with pkg/sanitizer for deployments where untrusted text can reach
// the template.
func WithBodyFilter(fn func(string) string) Option {
	return func(d *Dispatcher) {
		d.bodyFilter = fn
	}
}
