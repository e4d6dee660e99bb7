package stream

import (
	"errors"
	"reflect"
	"testing"
)

// collector gathers everything delivered to one subscription.
type collector struct {
	values    []int
	errs      []error
	completes int
}

func (c *collector) handlers() Handlers[int] {
	return Handlers[int]{
		OnValue:    func(v int) { c.values = append(c.values, v) },
		OnError:    func(err error) { c.errs = append(c.errs, err) },
		OnComplete: func() { c.completes++ },
	}
}

func TestFromSlice_ReplaysInOrderThenCompletes(t *testing.T) {
	src := FromSlice(1, 2, 3)

	got := &collector{}
	sub := src.Subscribe(got.handlers())

	if !reflect.DeepEqual(got.values, []int{1, 2, 3}) {
		t.Errorf("values = %v, want [1 2 3]", got.values)
	}
	if got.completes != 1 {
		t.Errorf("completes = %d, want 1", got.completes)
	}

	sub.Cancel() // canceling a finished subscription is a no-op
	sub.Cancel()
}

func TestFromSlice_EachSubscriptionRestarts(t *testing.T) {
	src := FromSlice(1, 2)

	first := &collector{}
	second := &collector{}
	src.Subscribe(first.handlers())
	src.Subscribe(second.handlers())

	if !reflect.DeepEqual(first.values, second.values) {
		t.Errorf("subscriptions diverged: %v vs %v", first.values, second.values)
	}
}

func TestFromSlice_NilHandlersTolerated(t *testing.T) {
	src := FromSlice(1, 2)
	src.Subscribe(Handlers[int]{}) // must not panic
}

func TestFail_DeliversErrorImmediately(t *testing.T) {
	wantErr := errors.New("boom")
	src := Fail[int](wantErr)

	got := &collector{}
	src.Subscribe(got.handlers())

	if len(got.errs) != 1 || !errors.Is(got.errs[0], wantErr) {
		t.Errorf("errs = %v, want [%v]", got.errs, wantErr)
	}
	if len(got.values) != 0 || got.completes != 0 {
		t.Errorf("unexpected values %v or completes %d", got.values, got.completes)
	}
}
