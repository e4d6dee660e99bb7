package stream

import (
	"sync"
	"time"
)

// Ticker returns a hot timer source. Each subscription runs its own ticker
// goroutine emitting a monotonically increasing sequence number, starting
// at 0, every interval. The source never terminates on its own; Cancel
// stops the goroutine.
//
// A tick already in flight when Cancel is called may or may not be
// delivered.
func Ticker(interval time.Duration) Stream[int] {
	return tickerStream{interval: interval}
}

type tickerStream struct {
	interval time.Duration
}

func (t tickerStream) Subscribe(h Handlers[int]) Subscription {
	sub := &tickerSubscription{done: make(chan struct{})}
	go func() {
		tk := time.NewTicker(t.interval)
		defer tk.Stop()
		n := 0
		for {
			select {
			case <-sub.done:
				return
			case <-tk.C:
				h.Value(n)
				n++
			}
		}
	}()
	return sub
}

type tickerSubscription struct {
	once sync.Once
	done chan struct{}
}

func (s *tickerSubscription) Cancel() {
	s.once.Do(func() { close(s.done) })
}
