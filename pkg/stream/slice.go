package stream

// FromSlice returns a cold source over a fixed set of values. Every
// subscription synchronously replays all values in order, then completes,
// before Subscribe returns.
func FromSlice[T any](values ...T) Stream[T] {
	return sliceStream[T]{values: values}
}

// Fail returns a cold source that immediately signals the given error to
// every subscription.
func Fail[T any](err error) Stream[T] {
	return failStream[T]{err: err}
}

type sliceStream[T any] struct {
	values []T
}

func (s sliceStream[T]) Subscribe(h Handlers[T]) Subscription {
	for _, v := range s.values {
		h.Value(v)
	}
	h.Complete()
	return noopSubscription{}
}

type failStream[T any] struct {
	err error
}

func (s failStream[T]) Subscribe(h Handlers[T]) Subscription {
	h.Error(s.err)
	return noopSubscription{}
}
