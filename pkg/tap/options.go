package tap

import "github.com/bft-labs/streamtap/pkg/log"

// Logger is the structured logging interface from pkg/log, re-exported for
// convenient access.
type Logger = log.Logger

// Option configures optional behavior of a Controller.
type Option func(*options)

// options holds the optional configuration for a Controller.
type options struct {
	logger   log.Logger
	onChange StateHandler
}

func defaultOptions() options {
	return options{logger: log.NewNoopLogger()}
}

// WithLogger sets a logger for state transitions and dispatch warnings.
// If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStateHandler sets a handler invoked synchronously after each real
// state transition. If not provided, no events are emitted.
func WithStateHandler(handler StateHandler) Option {
	return func(o *options) {
		o.onChange = handler
	}
}
