// Package app orchestrates a tap session for the CLI: it wires a
// filesystem event source, a printing and journaling sink, and a tap
// controller, and drives the controller's operations from process signals.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/bft-labs/streamtap/internal/cliconfig"
	"github.com/bft-labs/streamtap/internal/journal"
	"github.com/bft-labs/streamtap/pkg/fswatch"
	"github.com/bft-labs/streamtap/pkg/log"
	"github.com/bft-labs/streamtap/pkg/tap"
)

// Session is a single run of the streamtap CLI.
type Session struct {
	cfg    cliconfig.Config
	logger log.Logger
	out    io.Writer
}

// NewSession creates a session from validated configuration.
func NewSession(cfg cliconfig.Config, logger log.Logger, out io.Writer) *Session {
	return &Session{cfg: cfg, logger: logger, out: out}
}

// Run taps filesystem events under the configured directory until the
// context is canceled or a stop signal arrives. SIGUSR1 pauses delivery,
// SIGUSR2 resumes it (on platforms that have those signals); SIGINT and
// SIGTERM stop the tap and return.
//
// All four controller operations are issued from this goroutine; the
// controller requires a single calling context.
func (s *Session) Run(ctx context.Context) error {
	source, err := s.buildSource()
	if err != nil {
		return err
	}

	var jnl *journal.Journal
	if s.cfg.JournalPath != "" {
		session := uuid.NewString()
		jnl, err = journal.Open(s.cfg.JournalPath, session)
		if err != nil {
			return err
		}
		defer jnl.Close()
		s.logger.Info("journaling enabled",
			log.String("path", s.cfg.JournalPath),
			log.String("session", session),
		)
	}

	// terminated carries the stream's terminal signal to the loop below;
	// nil means completion. Buffered so the sink never blocks.
	terminated := make(chan error, 1)

	controller := tap.New(source, s.buildSink(jnl, terminated),
		tap.WithLogger(s.logger),
		tap.WithStateHandler(func(prev, cur tap.State, action tap.Action) {
			if jnl == nil {
				return
			}
			if err := jnl.Record(journal.KindState, fmt.Sprintf("%s -> %s (%s)", prev, cur, action)); err != nil {
				s.logger.Warn("journal write failed", log.Err(err))
			}
		}),
	)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, controlSignals...)
	defer signal.Stop(sigs)

	controller.Start()
	defer controller.Stop()

	s.logger.Info("tap started", log.String("dir", s.cfg.WatchDir))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-terminated:
			if s.cfg.Once {
				return err
			}
			// The controller stays Running against a finished stream
			// until an explicit stop; keep serving control signals.

		case sig := <-sigs:
			switch {
			case isPause(sig):
				controller.Pause()
			case isResume(sig):
				controller.Resume()
			default:
				s.logger.Info("stopping", log.String("signal", sig.String()))
				return nil
			}
		}
	}
}

func (s *Session) buildSource() (*fswatch.Source, error) {
	opts := []fswatch.Option{fswatch.WithLogger(s.logger)}

	ops, err := fswatch.ParseOps(s.cfg.Ops)
	if err != nil {
		return nil, err
	}
	if ops != 0 {
		opts = append(opts, fswatch.WithOps(ops))
	}
	if s.cfg.MaxEventRate > 0 {
		opts = append(opts, fswatch.WithMaxEventRate(rate.Limit(s.cfg.MaxEventRate), s.cfg.RateBurst))
	}

	return fswatch.New(s.cfg.WatchDir, opts...)
}

func (s *Session) buildSink(jnl *journal.Journal, terminated chan<- error) tap.Sink[fswatch.Event] {
	record := func(kind, detail string) {
		if jnl == nil {
			return
		}
		if err := jnl.Record(kind, detail); err != nil {
			s.logger.Warn("journal write failed", log.Err(err))
		}
	}

	return tap.Sink[fswatch.Event]{
		OnValue: func(ev fswatch.Event) {
			if !s.cfg.Quiet {
				fmt.Fprintf(s.out, "%s  %s\n", ev.At.Format(time.RFC3339), ev)
			}
			record(journal.KindValue, ev.String())
		},
		OnError: func(err error) {
			s.logger.Error("stream error", log.Err(err))
			record(journal.KindError, err.Error())
			select {
			case terminated <- err:
			default:
			}
		},
		OnComplete: func() {
			record(journal.KindComplete, "")
			select {
			case terminated <- nil:
			default:
			}
		},
	}
}
