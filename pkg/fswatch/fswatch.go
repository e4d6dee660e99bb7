// Package fswatch provides a filesystem event source for streamtap
// controllers, backed by fsnotify.
//
// The source is hot: each subscription opens its own watcher and only
// observes events that occur after Subscribe. Canceling a subscription
// closes its watcher. A watcher error terminates the subscription through
// the error channel.
package fswatch

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/bft-labs/streamtap/pkg/log"
	"github.com/bft-labs/streamtap/pkg/stream"
)

// Event is a single filesystem change observed under the watched directory.
type Event struct {
	// Path is the absolute or relative path fsnotify reported.
	Path string

	// Op is the fsnotify operation mask for this event.
	Op fsnotify.Op

	// At is the local time the event was observed.
	At time.Time
}

// String renders the event in "OP path" form for display.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Op, e.Path)
}

// Source is a stream.Stream[Event] over a single directory.
type Source struct {
	dir    string
	ops    fsnotify.Op
	limit  rate.Limit
	burst  int
	logger log.Logger
}

// New creates a source watching dir. The directory must exist.
func New(dir string, opts ...Option) (*Source, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fswatch: not a directory: %s", dir)
	}

	s := &Source{dir: dir, logger: log.NewNoopLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Subscribe opens a fresh watcher and delivers future events to h. Watcher
// construction failures are reported through the error channel; the
// returned subscription then holds nothing.
func (s *Source) Subscribe(h stream.Handlers[Event]) stream.Subscription {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		h.Error(err)
		return inertSubscription{}
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		h.Error(err)
		return inertSubscription{}
	}

	sub := &subscription{watcher: watcher, done: make(chan struct{})}
	go s.relay(sub, h)
	return sub
}

func (s *Source) relay(sub *subscription, h stream.Handlers[Event]) {
	var limiter *rate.Limiter
	if s.limit > 0 {
		limiter = rate.NewLimiter(s.limit, s.burst)
	}

	for {
		select {
		case <-sub.done:
			return

		case ev, ok := <-sub.watcher.Events:
			if !ok {
				return
			}
			if s.ops != 0 && ev.Op&s.ops == 0 {
				continue
			}
			if limiter != nil && !limiter.Allow() {
				s.logger.Debug("event dropped by rate limit",
					log.String("path", ev.Name),
					log.String("op", ev.Op.String()),
				)
				continue
			}
			h.Value(Event{Path: ev.Name, Op: ev.Op, At: time.Now()})

		case err, ok := <-sub.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Error("watcher error", log.Err(err))
			h.Error(err)
			sub.Cancel()
			return
		}
	}
}

type subscription struct {
	once    sync.Once
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Cancel closes the watcher. Idempotent.
func (s *subscription) Cancel() {
	s.once.Do(func() {
		close(s.done)
		s.watcher.Close()
	})
}

type inertSubscription struct{}

func (inertSubscription) Cancel() {}
