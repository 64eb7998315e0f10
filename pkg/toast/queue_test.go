package toast_test

import (
	"testing"
	"time"

	"github.com/go-mosaic/mosaic/pkg/toast"
)

// manualScheduler collects scheduled timers and fires them on demand.
type manualScheduler struct {
	timers []*manualTimer
}

type manualTimer struct {
	duration  time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

func (s *manualScheduler) schedule(d time.Duration, fn func()) func() {
	timer := &manualTimer{duration: d, fn: fn}
	s.timers = append(s.timers, timer)
	return func() { timer.cancelled = true }
}

// fire runs every pending timer, as if all durations elapsed.
func (s *manualScheduler) fire() {
	for _, timer := range s.timers {
		if !timer.cancelled && !timer.fired {
			timer.fired = true
			timer.fn()
		}
	}
}

func (s *manualScheduler) pending() int {
	n := 0
	for _, timer := range s.timers {
		if !timer.cancelled && !timer.fired {
			n++
		}
	}
	return n
}

func newTestQueue() (*toast.Queue, *manualScheduler) {
	sched := &manualScheduler{}
	return toast.NewQueueWithScheduler(sched.schedule), sched
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	q, _ := newTestQueue()

	a := q.Add(toast.Spec{Message: "one"})
	b := q.Add(toast.Spec{Message: "two"})
	if a == b {
		t.Fatal("expected unique toast IDs")
	}
	if q.Len() != 2 {
		t.Errorf("Len = %d, want 2", q.Len())
	}
}

func TestAddDefaultsDuration(t *testing.T) {
	q, sched := newTestQueue()

	q.Add(toast.Spec{Message: "hello"})
	if len(sched.timers) != 1 {
		t.Fatalf("expected one scheduled timer, got %d", len(sched.timers))
	}
	if sched.timers[0].duration != toast.DefaultDuration {
		t.Errorf("duration = %v, want %v", sched.timers[0].duration, toast.DefaultDuration)
	}
}

func TestInfiniteDurationSchedulesNoTimer(t *testing.T) {
	q, sched := newTestQueue()

	q.Add(toast.Spec{Message: "sticky", Duration: toast.DurationInfinite})
	if len(sched.timers) != 0 {
		t.Errorf("infinite toast scheduled %d timers, want 0", len(sched.timers))
	}
	if q.Len() != 1 {
		t.Errorf("Len = %d, want 1", q.Len())
	}
}

func TestExpiryRemovesToast(t *testing.T) {
	q, sched := newTestQueue()

	q.Add(toast.Spec{Message: "bye", Duration: time.Second})
	sched.fire()
	if q.Len() != 0 {
		t.Errorf("Len after expiry = %d, want 0", q.Len())
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	q, _ := newTestQueue()

	closes := 0
	id := q.Add(toast.Spec{Message: "x", OnClose: func() { closes++ }})

	q.Remove(id)
	q.Remove(id)
	q.Remove("no-such-id")

	if closes != 1 {
		t.Errorf("OnClose fired %d times, want exactly 1", closes)
	}
	if q.Len() != 0 {
		t.Errorf("Len = %d, want 0", q.Len())
	}
}

func TestExpiryThenRemoveFiresOnCloseOnce(t *testing.T) {
	q, sched := newTestQueue()

	closes := 0
	id := q.Add(toast.Spec{Message: "x", Duration: time.Second, OnClose: func() { closes++ }})

	sched.fire()
	q.Remove(id)
	if closes != 1 {
		t.Errorf("OnClose fired %d times, want exactly 1", closes)
	}
}

func TestUpdateMergesFields(t *testing.T) {
	q, _ := newTestQueue()

	id := q.Add(toast.Spec{Title: "old", Message: "keep"})
	q.Update(id, toast.Patch{Title: toast.Of("new")})

	toasts := q.Toasts()
	if toasts[0].Title != "new" {
		t.Errorf("Title = %q, want new", toasts[0].Title)
	}
	if toasts[0].Message != "keep" {
		t.Errorf("Message = %q, patch should not clear unset fields", toasts[0].Message)
	}
	if toasts[0].ID != id {
		t.Error("ID must be immutable across updates")
	}
}

func TestUpdateDurationReschedules(t *testing.T) {
	q, sched := newTestQueue()

	id := q.Add(toast.Spec{Message: "x", Duration: time.Second})
	q.Update(id, toast.Patch{Duration: toast.Of(5 * time.Second)})

	// The original timer is cancelled; exactly one new timer is pending.
	if sched.pending() != 1 {
		t.Fatalf("pending timers = %d, want 1", sched.pending())
	}
	if !sched.timers[0].cancelled {
		t.Error("original timer should have been cancelled")
	}
	if sched.timers[1].duration != 5*time.Second {
		t.Errorf("rescheduled duration = %v, want 5s", sched.timers[1].duration)
	}
}

func TestUpdateToInfiniteCancelsTimer(t *testing.T) {
	q, sched := newTestQueue()

	id := q.Add(toast.Spec{Message: "x", Duration: time.Second})
	q.Update(id, toast.Patch{Duration: toast.Of(toast.DurationInfinite)})

	if sched.pending() != 0 {
		t.Errorf("pending timers = %d, want 0 after making toast sticky", sched.pending())
	}
	if q.Len() != 1 {
		t.Error("toast should remain after its timer is cancelled")
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	q, _ := newTestQueue()
	q.Add(toast.Spec{Message: "x"})

	q.Update("missing", toast.Patch{Title: toast.Of("boom")})
	if q.Toasts()[0].Title != "" {
		t.Error("update of unknown ID must not touch other toasts")
	}
}

func TestRemoveAll(t *testing.T) {
	q, _ := newTestQueue()

	closes := 0
	q.Add(toast.Spec{Message: "a", OnClose: func() { closes++ }})
	q.Add(toast.Spec{Message: "b", OnClose: func() { closes++ }})

	q.RemoveAll()
	if q.Len() != 0 {
		t.Errorf("Len = %d, want 0", q.Len())
	}
	if closes != 2 {
		t.Errorf("OnClose fired %d times, want 2", closes)
	}
}

func TestCloseSkipsOnClose(t *testing.T) {
	q, sched := newTestQueue()

	closes := 0
	q.Add(toast.Spec{Message: "a", Duration: time.Second, OnClose: func() { closes++ }})

	q.Close()
	if closes != 0 {
		t.Error("Close must not invoke OnClose")
	}
	if sched.pending() != 0 {
		t.Error("Close must cancel pending timers")
	}
	q.Add(toast.Spec{Message: "late"})
	if q.Len() != 0 {
		t.Error("Add after Close should be ignored")
	}
}

func TestByPositionBucketsFIFO(t *testing.T) {
	q, _ := newTestQueue()

	q.Add(toast.Spec{Message: "first", Position: toast.PositionTopRight})
	q.Add(toast.Spec{Message: "left", Position: toast.PositionBottomLeft})
	q.Add(toast.Spec{Message: "second", Position: toast.PositionTopRight})

	buckets := q.ByPosition()
	topRight := buckets[toast.PositionTopRight]
	if len(topRight) != 2 {
		t.Fatalf("top-right bucket has %d toasts, want 2", len(topRight))
	}
	if topRight[0].Message != "first" || topRight[1].Message != "second" {
		t.Error("bucket order should be insertion order")
	}
	if len(buckets[toast.PositionBottomLeft]) != 1 {
		t.Error("expected one bottom-left toast")
	}
}

func TestOnChangeNotifications(t *testing.T) {
	q, sched := newTestQueue()

	changes := 0
	q.OnChange = func() { changes++ }

	id := q.Add(toast.Spec{Message: "x", Duration: time.Second})
	q.Update(id, toast.Patch{Title: toast.Of("t")})
	sched.fire()

	if changes != 3 {
		t.Errorf("OnChange fired %d times, want 3 (add, update, expiry)", changes)
	}
}
