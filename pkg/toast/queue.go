package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Scheduler starts a cancellable timer. The returned function cancels the
// pending callback; cancelling an already-fired timer is a no-op.
//
// The default scheduler wraps time.AfterFunc. Tests inject a manual
// implementation to drive expiry deterministically.
type Scheduler func(d time.Duration, fn func()) (cancel func())

func defaultScheduler(d time.Duration, fn func()) func() {
	timer := time.AfterFunc(d, fn)
	return func() { timer.Stop() }
}

// record pairs a toast with its pending expiry timer.
type record struct {
	toast  Toast
	cancel func()
	closed bool
}

// Queue owns an ordered collection of toasts.
//
// Mutations are safe to call from any goroutine: expiry timers fire on
// runtime goroutines, so the queue guards its state with a mutex and
// delivers change notifications through OnChange. The hosting widget should
// dispatch OnChange back onto the UI thread before rebuilding.
//
// Unknown IDs are silent no-ops everywhere. A widget may dismiss a toast
// concurrently with a pending async update; treating the stale ID as an
// error would turn that benign race into a crash.
type Queue struct {
	mu       sync.Mutex
	records  []*record
	byID     map[string]*record
	schedule Scheduler
	closed   bool

	// OnChange is called after every queue mutation, outside the queue lock.
	// Set it once before the first Add.
	OnChange func()
}

// NewQueue creates an empty queue using the wall-clock scheduler.
func NewQueue() *Queue {
	return NewQueueWithScheduler(defaultScheduler)
}

// NewQueueWithScheduler creates a queue with a custom timer scheduler.
func NewQueueWithScheduler(schedule Scheduler) *Queue {
	return &Queue{
		byID:     make(map[string]*record),
		schedule: schedule,
	}
}

// Add creates a toast from spec and returns its fresh unique ID.
//
// A finite duration schedules an independent expiry timer at creation.
// Zero duration means DefaultDuration; DurationInfinite means no timer.
func (q *Queue) Add(spec Spec) string {
	duration := spec.Duration
	if duration == 0 {
		duration = DefaultDuration
	}

	t := Toast{
		ID:        uuid.NewString(),
		Type:      spec.Type,
		Title:     spec.Title,
		Message:   spec.Message,
		Position:  spec.Position,
		Style:     spec.Style,
		Duration:  duration,
		CreatedAt: time.Now(),
		onClose:   spec.OnClose,
	}

	rec := &record{toast: t}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return t.ID
	}
	q.records = append(q.records, rec)
	q.byID[t.ID] = rec
	if duration != DurationInfinite {
		id := t.ID
		rec.cancel = q.schedule(duration, func() { q.Remove(id) })
	}
	q.mu.Unlock()

	q.notify()
	return t.ID
}

// Update shallow-merges patch into the toast with the given ID.
// Unknown IDs are silent no-ops.
//
// When the patch changes Duration, the existing timer is cancelled before
// the new one is scheduled, and the new expiry is measured from now rather
// than from the toast's creation.
func (q *Queue) Update(id string, patch Patch) {
	q.mu.Lock()
	rec, ok := q.byID[id]
	if !ok {
		q.mu.Unlock()
		return
	}

	if patch.Type != nil {
		rec.toast.Type = *patch.Type
	}
	if patch.Title != nil {
		rec.toast.Title = *patch.Title
	}
	if patch.Message != nil {
		rec.toast.Message = *patch.Message
	}
	if patch.Position != nil {
		rec.toast.Position = *patch.Position
	}
	if patch.Style != nil {
		rec.toast.Style = *patch.Style
	}
	if patch.OnClose != nil {
		rec.toast.onClose = *patch.OnClose
	}
	if patch.Duration != nil {
		// Cancel before rescheduling so a stale timer cannot double-fire.
		if rec.cancel != nil {
			rec.cancel()
			rec.cancel = nil
		}
		rec.toast.Duration = *patch.Duration
		if *patch.Duration != DurationInfinite {
			rec.cancel = q.schedule(*patch.Duration, func() { q.Remove(id) })
		}
	}
	q.mu.Unlock()

	q.notify()
}

// Remove dismisses the toast with the given ID, cancelling its timer and
// invoking OnClose. Removing an unknown or already-removed ID is a no-op,
// and OnClose never fires twice.
func (q *Queue) Remove(id string) {
	q.mu.Lock()
	rec, ok := q.byID[id]
	if !ok {
		q.mu.Unlock()
		return
	}
	onClose := q.dropLocked(rec)
	q.mu.Unlock()

	if onClose != nil {
		onClose()
	}
	q.notify()
}

// RemoveAll dismisses every toast, invoking each OnClose once.
func (q *Queue) RemoveAll() {
	q.mu.Lock()
	var callbacks []func()
	for _, rec := range q.records {
		if fn := q.dropRecordLocked(rec); fn != nil {
			callbacks = append(callbacks, fn)
		}
	}
	q.records = nil
	clear(q.byID)
	q.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
	q.notify()
}

// Close tears the queue down, cancelling all pending timers without
// invoking OnClose callbacks. Further Adds are ignored.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	for _, rec := range q.records {
		if rec.cancel != nil {
			rec.cancel()
			rec.cancel = nil
		}
	}
	q.records = nil
	clear(q.byID)
	q.mu.Unlock()
}

// Toasts returns a snapshot of the live toasts in insertion order.
func (q *Queue) Toasts() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	toasts := make([]Toast, 0, len(q.records))
	for _, rec := range q.records {
		toasts = append(toasts, rec.toast)
	}
	return toasts
}

// ByPosition returns the live toasts bucketed by position. Within a bucket
// the order is insertion order (FIFO); there is no priority reordering.
func (q *Queue) ByPosition() map[Position][]Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	buckets := make(map[Position][]Toast)
	for _, rec := range q.records {
		buckets[rec.toast.Position] = append(buckets[rec.toast.Position], rec.toast)
	}
	return buckets
}

// Len returns the number of live toasts.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.records)
}

// dropLocked removes rec from the queue and returns its pending OnClose,
// or nil if it already fired. Caller holds q.mu.
func (q *Queue) dropLocked(rec *record) func() {
	for i, r := range q.records {
		if r == rec {
			q.records = append(q.records[:i], q.records[i+1:]...)
			break
		}
	}
	delete(q.byID, rec.toast.ID)
	return q.dropRecordLocked(rec)
}

// dropRecordLocked cancels rec's timer and claims its OnClose exactly once.
func (q *Queue) dropRecordLocked(rec *record) func() {
	if rec.cancel != nil {
		rec.cancel()
		rec.cancel = nil
	}
	if rec.closed {
		return nil
	}
	rec.closed = true
	return rec.toast.onClose
}

func (q *Queue) notify() {
	if q.OnChange != nil {
		q.OnChange()
	}
}
