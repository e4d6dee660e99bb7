package stream

import (
	"testing"
	"time"
)

func TestTicker_EmitsSequenceAndStopsOnCancel(t *testing.T) {
	src := Ticker(10 * time.Millisecond)

	ticks := make(chan int, 16)
	sub := src.Subscribe(Handlers[int]{OnValue: func(v int) { ticks <- v }})

	deadline := time.After(2 * time.Second)
	for want := 0; want < 3; want++ {
		select {
		case got := <-ticks:
			if got != want {
				t.Fatalf("tick = %d, want %d", got, want)
			}
		case <-deadline:
			t.Fatal("timed out waiting for ticks")
		}
	}

	sub.Cancel()
	sub.Cancel() // idempotent

	// Drain anything in flight at cancellation, then expect silence.
	time.Sleep(50 * time.Millisecond)
	for len(ticks) > 0 {
		<-ticks
	}
	time.Sleep(50 * time.Millisecond)
	if n := len(ticks); n != 0 {
		t.Errorf("received %d ticks after cancel", n)
	}
}

func TestTicker_SubscriptionsAreIndependent(t *testing.T) {
	src := Ticker(10 * time.Millisecond)

	first := make(chan int, 1)
	second := make(chan int, 1)
	subA := src.Subscribe(Handlers[int]{OnValue: func(v int) {
		select {
		case first <- v:
		default:
		}
	}})
	defer subA.Cancel()

	// A later subscription restarts its own sequence at 0.
	time.Sleep(30 * time.Millisecond)
	subB := src.Subscribe(Handlers[int]{OnValue: func(v int) {
		select {
		case second <- v:
		default:
		}
	}})
	defer subB.Cancel()

	select {
	case v := <-second:
		if v != 0 {
			t.Errorf("first tick of new subscription = %d, want 0", v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for second subscription")
	}
}
