package tap

import (
	"sync/atomic"

	"github.com/bft-labs/streamtap/pkg/log"
	"github.com/bft-labs/streamtap/pkg/stream"
)

// Controller guards when a subscription to the source exists and when
// received values are forwarded to the sink.
//
// The controller is created Stopped with no subscription. It is reusable
// indefinitely; there is no terminal state. Callers should Stop a
// controller before discarding it so the subscription, if any, is
// released.
//
// The source and sink references are fixed for the controller's lifetime.
type Controller[T any] struct {
	source stream.Stream[T]
	out    channels[T]

	// relay is built once and attached identically on every Start/Resume.
	relay stream.Handlers[T]

	// state is read atomically by the relay from the source's delivery
	// goroutine; the four operations require a single calling context.
	state atomic.Int32
	sub   stream.Subscription

	logger   log.Logger
	onChange StateHandler
}

// New creates a controller over source, forwarding into sink. The zero
// Sink is a valid argument. The controller starts Stopped; call Start to
// begin delivery.
func New[T any](source stream.Stream[T], sink Sink[T], opts ...Option) *Controller[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Controller[T]{
		source:   source,
		out:      sink.normalize(),
		logger:   o.logger,
		onChange: o.onChange,
	}

	c.relay = stream.Handlers[T]{
		// Subscribing can synchronously deliver values before Start or
		// Resume returns. Gating on state, not on the presence of a
		// subscription handle, keeps the contract correct for such
		// producers and for reentrant calls made from within a handler.
		OnValue: func(v T) {
			if c.State() == StateRunning {
				c.out.value(v)
			}
		},
		// A subscription only exists while Running, so terminal signals
		// are forwarded without a state gate.
		OnError:    func(err error) { c.out.err(err) },
		OnComplete: func() { c.out.complete() },
	}

	return c
}

// State returns the current delivery state.
func (c *Controller[T]) State() State {
	return State(c.state.Load())
}

// Start begins delivery by subscribing to the source. No-op unless the
// controller is Stopped.
func (c *Controller[T]) Start() {
	if c.State() != StateStopped {
		return
	}
	c.transition(StateRunning, ActionStart)
	c.subscribe()
}

// Stop halts delivery and fully releases the subscription. No-op when
// already Stopped; safe to call repeatedly.
func (c *Controller[T]) Stop() {
	if c.State() == StateStopped {
		return
	}
	c.transition(StateStopped, ActionStop)
	c.release()
}

// Pause halts delivery while remembering the intent to resume. The
// subscription is fully released; nothing produced while Paused is
// buffered. No-op unless Running.
func (c *Controller[T]) Pause() {
	if c.State() != StateRunning {
		return
	}
	c.transition(StatePaused, ActionPause)
	c.release()
}

// Resume creates a fresh subscription to the source. Under a cold source
// production restarts from its beginning; under a hot source only future
// events are seen. No-op unless Paused.
func (c *Controller[T]) Resume() {
	if c.State() != StatePaused {
		return
	}
	c.transition(StateRunning, ActionResume)
	c.subscribe()
}

// Command dispatches a named control action to the corresponding
// operation. It performs no additional logic and has identical guarantees
// to calling the operation directly. Unknown actions are ignored.
func (c *Controller[T]) Command(action Action) {
	switch action {
	case ActionStart:
		c.Start()
	case ActionStop:
		c.Stop()
	case ActionPause:
		c.Pause()
	case ActionResume:
		c.Resume()
	default:
		c.logger.Warn("unknown control action", log.String("action", string(action)))
	}
}

// subscribe attaches the fixed relay to the source. State has already been
// set to Running so values delivered synchronously during Subscribe pass
// the gate.
func (c *Controller[T]) subscribe() {
	sub := c.source.Subscribe(c.relay)
	if c.State() == StateRunning {
		c.sub = sub
		return
	}
	// A reentrant Stop or Pause from a synchronous delivery already left
	// Running; don't resurrect the released handle.
	sub.Cancel()
}

func (c *Controller[T]) release() {
	if c.sub != nil {
		c.sub.Cancel()
		c.sub = nil
	}
}

func (c *Controller[T]) transition(to State, action Action) {
	prev := c.State()
	c.state.Store(int32(to))

	if c.onChange != nil {
		c.onChange(prev, to, action)
	}

	c.logger.Info("state transition",
		log.String("from", prev.String()),
		log.String("to", to.String()),
		log.String("action", string(action)),
	)
}
