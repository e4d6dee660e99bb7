// Package streamtap provides a pausable delivery controller for push-based
// event streams.
//
// Example usage:
//
//	src := stream.NewSubject[int]()
//	ctl := streamtap.New(src, streamtap.SinkFunc(func(v int) {
//	    fmt.Println(v)
//	}))
//	ctl.Start()
//	src.Publish(1) // forwarded
//	ctl.Pause()
//	src.Publish(2) // dropped, nothing is buffered
//	ctl.Resume()
//	src.Publish(3) // forwarded
//	ctl.Stop()
//
// The heavy lifting lives in the sub-packages; this package re-exports the
// controller surface for convenient access. Import pkg/tap, pkg/stream,
// pkg/fswatch, and pkg/log directly for selective use.
package streamtap

import (
	"github.com/bft-labs/streamtap/pkg/stream"
	"github.com/bft-labs/streamtap/pkg/tap"
)

// State is the delivery state of a controller.
type State = tap.State

// Delivery states. A controller is created Stopped.
const (
	StateStopped = tap.StateStopped
	StateRunning = tap.StateRunning
	StatePaused  = tap.StatePaused
)

// Action names a control operation for Command dispatch.
type Action = tap.Action

// Control actions accepted by Controller.Command.
const (
	ActionStart  = tap.ActionStart
	ActionStop   = tap.ActionStop
	ActionPause  = tap.ActionPause
	ActionResume = tap.ActionResume
)

// Controller guards when a subscription exists and when received values
// are forwarded to the sink.
type Controller[T any] = tap.Controller[T]

// Sink is the consumer-side handler set; each channel is independently
// optional and the zero value is a valid, side-effect-free sink.
type Sink[T any] = tap.Sink[T]

// Option configures optional behavior of a Controller.
type Option = tap.Option

// New creates a controller over source, forwarding into sink. The
// controller starts Stopped; call Start to begin delivery.
func New[T any](source stream.Stream[T], sink Sink[T], opts ...Option) *Controller[T] {
	return tap.New(source, sink, opts...)
}

// SinkFunc wraps a bare callback as a value-only sink.
func SinkFunc[T any](fn func(v T)) Sink[T] {
	return tap.SinkFunc(fn)
}

// WithLogger sets a logger for state transitions and dispatch warnings.
func WithLogger(logger tap.Logger) Option {
	return tap.WithLogger(logger)
}

// WithStateHandler sets a handler invoked synchronously after each real
// state transition.
func WithStateHandler(handler tap.StateHandler) Option {
	return tap.WithStateHandler(handler)
}
