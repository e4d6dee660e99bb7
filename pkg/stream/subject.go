package stream

import "sync"

// Subject is a hot, multicasting source. Values pushed with Publish are
// delivered to every live subscription in subscription order; late
// subscribers only observe future events.
//
// Once a terminal signal has been pushed (Fail or Complete), further
// publishes are dropped and new subscribers receive the terminal signal
// immediately.
//
// Subject is safe for concurrent use.
type Subject[T any] struct {
	mu     sync.Mutex
	subs   []subjectEntry[T]
	nextID int
	done   bool
	err    error
	failed bool
}

type subjectEntry[T any] struct {
	id int
	h  Handlers[T]
}

// NewSubject creates an empty hot source.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// Subscribe registers handlers for future events. If the subject has
// already terminated, the terminal signal is delivered synchronously and
// the returned subscription holds nothing.
func (s *Subject[T]) Subscribe(h Handlers[T]) Subscription {
	s.mu.Lock()
	if s.done {
		failed, err := s.failed, s.err
		s.mu.Unlock()
		if failed {
			h.Error(err)
		} else {
			h.Complete()
		}
		return noopSubscription{}
	}
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subjectEntry[T]{id: id, h: h})
	s.mu.Unlock()
	return &subjectSubscription[T]{subject: s, id: id}
}

// Publish delivers v to all live subscriptions. Dropped after termination.
func (s *Subject[T]) Publish(v T) {
	for _, e := range s.snapshot() {
		e.h.Value(v)
	}
}

// Fail terminates the subject with err and delivers it to all live
// subscriptions. Only the first terminal signal wins.
func (s *Subject[T]) Fail(err error) {
	for _, e := range s.terminate(true, err) {
		e.h.Error(err)
	}
}

// Complete terminates the subject and delivers completion to all live
// subscriptions. Only the first terminal signal wins.
func (s *Subject[T]) Complete() {
	for _, e := range s.terminate(false, nil) {
		e.h.Complete()
	}
}

func (s *Subject[T]) snapshot() []subjectEntry[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return nil
	}
	out := make([]subjectEntry[T], len(s.subs))
	copy(out, s.subs)
	return out
}

func (s *Subject[T]) terminate(failed bool, err error) []subjectEntry[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return nil
	}
	s.done = true
	s.failed = failed
	s.err = err
	out := s.subs
	s.subs = nil
	return out
}

func (s *Subject[T]) unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.subs {
		if e.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

type subjectSubscription[T any] struct {
	subject *Subject[T]
	id      int
}

func (s *subjectSubscription[T]) Cancel() {
	s.subject.unsubscribe(s.id)
}
