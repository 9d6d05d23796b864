package toast

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"notes/internal/types"
)

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) schedule(d time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer := &fakeTimer{delay: d, fn: fn}
	s.timers = append(s.timers, timer)
	return timer
}

func (s *fakeScheduler) fire(i int) {
	s.mu.Lock()
	timer := s.timers[i]
	s.mu.Unlock()
	timer.fn()
}

func TestPushKeepsFourNewestFirst(t *testing.T) {
	sched := &fakeScheduler{}
	q := NewQueue(WithScheduler(sched.schedule))
	for i := 1; i <= 5; i++ {
		q.Push(types.ToastInfo, string(rune('a'+i-1)), -1)
	}
	toasts := q.Toasts()
	if len(toasts) != MaxToasts {
		t.Fatalf("expected %d toasts, got %d", MaxToasts, len(toasts))
	}
	got := ""
	for _, toast := range toasts {
		got += toast.Message
	}
	if got != "edcb" {
		t.Fatalf("expected newest first without the oldest, got %q", got)
	}
	if !sched.timers[0].stopped {
		t.Fatalf("expected evicted toast timer to be stopped")
	}
}

func TestPushAssignsDistinctIncreasingIDs(t *testing.T) {
	q := NewQueue(WithScheduler((&fakeScheduler{}).schedule))
	a := q.Info("a")
	b := q.Success("b")
	c := q.Error("c")
	if !(a < b && b < c) || a != 1 {
		t.Fatalf("expected increasing ids starting at 1, got %d %d %d", a, b, c)
	}
	toasts := q.Toasts()
	if toasts[0].Kind != types.ToastError || toasts[1].Kind != types.ToastSuccess || toasts[2].Kind != types.ToastInfo {
		t.Fatalf("unexpected kinds: %+v", toasts)
	}
}

func TestPushUsesDefaultTimeout(t *testing.T) {
	sched := &fakeScheduler{}
	q := NewQueue(WithScheduler(sched.schedule))
	q.Info("default")
	q.Push(types.ToastInfo, "custom", time.Second)
	if sched.timers[0].delay != DefaultTimeout {
		t.Fatalf("expected default timeout, got %v", sched.timers[0].delay)
	}
	if sched.timers[1].delay != time.Second {
		t.Fatalf("expected custom timeout, got %v", sched.timers[1].delay)
	}

	sched = &fakeScheduler{}
	q = NewQueue(WithScheduler(sched.schedule), WithDefaultTimeout(time.Minute))
	q.Error("configured")
	if sched.timers[0].delay != time.Minute {
		t.Fatalf("expected configured default, got %v", sched.timers[0].delay)
	}
}

func TestTimerExpiryRemovesToast(t *testing.T) {
	sched := &fakeScheduler{}
	q := NewQueue(WithScheduler(sched.schedule))
	first := q.Info("first")
	q.Info("second")
	sched.fire(0)
	toasts := q.Toasts()
	if len(toasts) != 1 || toasts[0].ID == first {
		t.Fatalf("expected first toast expired, got %+v", toasts)
	}
}

func TestDismissIsIdempotent(t *testing.T) {
	sched := &fakeScheduler{}
	q := NewQueue(WithScheduler(sched.schedule))
	id := q.Info("x")
	q.Dismiss(id)
	q.Dismiss(id)
	q.Dismiss(999)
	if q.Len() != 0 {
		t.Fatalf("expected empty queue, got %d", q.Len())
	}
	if !sched.timers[0].stopped {
		t.Fatalf("expected timer stopped on dismiss")
	}
	sched.fire(0)
	if q.Len() != 0 {
		t.Fatalf("late timer should be a no-op")
	}
}

func TestDismissNewest(t *testing.T) {
	q := NewQueue(WithScheduler((&fakeScheduler{}).schedule))
	if q.DismissNewest() {
		t.Fatalf("expected false on empty queue")
	}
	q.Info("old")
	q.Info("new")
	if !q.DismissNewest() {
		t.Fatalf("expected a toast to be dismissed")
	}
	toasts := q.Toasts()
	if len(toasts) != 1 || toasts[0].Message != "old" {
		t.Fatalf("unexpected queue: %+v", toasts)
	}
}

func TestOnChangeNotifiesEveryMutation(t *testing.T) {
	q := NewQueue(WithScheduler((&fakeScheduler{}).schedule))
	var calls atomic.Int32
	q.OnChange(func() { calls.Add(1) })
	id := q.Info("x")
	q.Dismiss(id)
	q.Dismiss(id)
	if calls.Load() != 2 {
		t.Fatalf("expected 2 notifications, got %d", calls.Load())
	}
}

func TestZeroTimeoutExpiresOnRealTimer(t *testing.T) {
	q := NewQueue()
	done := make(chan struct{}, 1)
	q.OnChange(func() {
		if q.Len() == 0 {
			select {
			case done <- struct{}{}:
			default:
			}
		}
	})
	q.Push(types.ToastSuccess, "gone", 0)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected zero-timeout toast to expire")
	}
	if q.Len() != 0 {
		t.Fatalf("expected empty queue")
	}
}

func TestInvalidKindFallsBackToInfo(t *testing.T) {
	q := NewQueue(WithScheduler((&fakeScheduler{}).schedule))
	q.Push(types.ToastKind("warning"), "x", -1)
	if q.Toasts()[0].Kind != types.ToastInfo {
		t.Fatalf("expected info kind, got %q", q.Toasts()[0].Kind)
	}
}
