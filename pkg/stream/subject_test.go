package stream

import (
	"errors"
	"reflect"
	"testing"
)

func TestSubject_MulticastsInSubscriptionOrder(t *testing.T) {
	subj := NewSubject[int]()

	var order []string
	subj.Subscribe(Handlers[int]{OnValue: func(v int) { order = append(order, "a") }})
	subj.Subscribe(Handlers[int]{OnValue: func(v int) { order = append(order, "b") }})

	subj.Publish(1)

	if !reflect.DeepEqual(order, []string{"a", "b"}) {
		t.Errorf("delivery order = %v, want [a b]", order)
	}
}

func TestSubject_LateSubscriberSeesOnlyFutureEvents(t *testing.T) {
	subj := NewSubject[int]()
	subj.Publish(1)

	got := &collector{}
	subj.Subscribe(got.handlers())
	subj.Publish(2)

	if !reflect.DeepEqual(got.values, []int{2}) {
		t.Errorf("values = %v, want [2]", got.values)
	}
}

func TestSubject_CancelStopsDelivery(t *testing.T) {
	subj := NewSubject[int]()

	got := &collector{}
	sub := subj.Subscribe(got.handlers())

	subj.Publish(1)
	sub.Cancel()
	subj.Publish(2)
	sub.Cancel() // idempotent

	if !reflect.DeepEqual(got.values, []int{1}) {
		t.Errorf("values = %v, want [1]", got.values)
	}
}

func TestSubject_CancelOneKeepsOthers(t *testing.T) {
	subj := NewSubject[int]()

	first := &collector{}
	second := &collector{}
	sub := subj.Subscribe(first.handlers())
	subj.Subscribe(second.handlers())

	sub.Cancel()
	subj.Publish(1)

	if len(first.values) != 0 {
		t.Errorf("canceled subscription received %v", first.values)
	}
	if !reflect.DeepEqual(second.values, []int{1}) {
		t.Errorf("live subscription values = %v, want [1]", second.values)
	}
}

func TestSubject_TerminalSignals(t *testing.T) {
	t.Run("complete reaches all and drops later publishes", func(t *testing.T) {
		subj := NewSubject[int]()
		got := &collector{}
		subj.Subscribe(got.handlers())

		subj.Complete()
		subj.Publish(1)
		subj.Complete() // only the first terminal wins

		if got.completes != 1 {
			t.Errorf("completes = %d, want 1", got.completes)
		}
		if len(got.values) != 0 {
			t.Errorf("values after completion = %v, want none", got.values)
		}
	})

	t.Run("fail after complete is dropped", func(t *testing.T) {
		subj := NewSubject[int]()
		got := &collector{}
		subj.Subscribe(got.handlers())

		subj.Complete()
		subj.Fail(errors.New("boom"))

		if len(got.errs) != 0 {
			t.Errorf("errs = %v, want none", got.errs)
		}
	})

	t.Run("late subscriber gets terminal signal immediately", func(t *testing.T) {
		wantErr := errors.New("boom")
		subj := NewSubject[int]()
		subj.Fail(wantErr)

		got := &collector{}
		sub := subj.Subscribe(got.handlers())

		if len(got.errs) != 1 || !errors.Is(got.errs[0], wantErr) {
			t.Errorf("errs = %v, want [%v]", got.errs, wantErr)
		}
		sub.Cancel() // no-op
	})
}
