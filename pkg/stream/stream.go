package stream

// Handlers is the set of callbacks a subscriber registers against a Stream.
// Each handler is independently optional; sources must nil-check before
// invoking.
type Handlers[T any] struct {
	// OnValue receives each produced value in production order.
	OnValue func(v T)

	// OnError receives the terminal error signal, at most once.
	OnError func(err error)

	// OnComplete receives the terminal completion signal, at most once.
	OnComplete func()
}

// Value invokes OnValue if set.
func (h Handlers[T]) Value(v T) {
	if h.OnValue != nil {
		h.OnValue(v)
	}
}

// Error invokes OnError if set.
func (h Handlers[T]) Error(err error) {
	if h.OnError != nil {
		h.OnError(err)
	}
}

// Complete invokes OnComplete if set.
func (h Handlers[T]) Complete() {
	if h.OnComplete != nil {
		h.OnComplete()
	}
}

// Subscription is a live registration of handlers against a Stream.
type Subscription interface {
	// Cancel releases the registration. After Cancel returns no further
	// values are delivered to the handlers. Cancel is idempotent; canceling
	// an already-terminated subscription is a no-op.
	Cancel()
}

// Stream is a lazy producer of values terminated by a completion or an
// error signal.
//
// Subscribe may deliver values synchronously before it returns; callers
// that gate delivery must be prepared for that (see pkg/tap).
type Stream[T any] interface {
	Subscribe(h Handlers[T]) Subscription
}

// noopSubscription is returned by sources that finish synchronously during
// Subscribe and hold nothing to release.
type noopSubscription struct{}

func (noopSubscription) Cancel() {}
