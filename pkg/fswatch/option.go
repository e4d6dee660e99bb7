package fswatch

import (
	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/bft-labs/streamtap/pkg/log"
)

// Option configures optional behavior of a Source.
type Option func(*Source)

// WithOps restricts delivery to events matching the given operation mask.
// The default is to deliver every operation.
func WithOps(ops fsnotify.Op) Option {
	return func(s *Source) {
		s.ops = ops
	}
}

// WithMaxEventRate caps delivery at limit events per second with the given
// burst. Events beyond the budget are dropped, not queued; editors and
// build tools produce write storms that would otherwise flood the sink.
// A zero limit disables the cap.
func WithMaxEventRate(limit rate.Limit, burst int) Option {
	return func(s *Source) {
		s.limit = limit
		s.burst = burst
	}
}

// WithLogger sets a logger for drop and watcher-error diagnostics.
// If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(s *Source) {
		s.logger = logger
	}
}
