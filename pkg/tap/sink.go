package tap

// Sink is the consumer-side handler set supplied at construction. Each
// channel is independently optional; the zero value is a valid,
// side-effect-free sink, useful when the stream performs its own side
// effects.
type Sink[T any] struct {
	// OnValue receives forwarded values while the controller is Running.
	OnValue func(v T)

	// OnError receives the stream's terminal error, unconditionally.
	OnError func(err error)

	// OnComplete receives the stream's completion signal, unconditionally.
	OnComplete func()
}

// SinkFunc wraps a bare callback as a value-only sink.
func SinkFunc[T any](fn func(v T)) Sink[T] {
	return Sink[T]{OnValue: fn}
}

// channels is the normalized three-channel record the relay forwards into.
// Normalization happens once at construction, not per event.
type channels[T any] struct {
	value    func(v T)
	err      func(err error)
	complete func()
}

func (s Sink[T]) normalize() channels[T] {
	c := channels[T]{
		value:    s.OnValue,
		err:      s.OnError,
		complete: s.OnComplete,
	}
	if c.value == nil {
		c.value = func(T) {}
	}
	if c.err == nil {
		c.err = func(error) {}
	}
	if c.complete == nil {
		c.complete = func() {}
	}
	return c
}
