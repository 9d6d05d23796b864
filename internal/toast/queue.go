// Package toast holds the transient notifications shown on top of every
// view. A Queue is created once at start-up and shared by all views.
package toast

import (
	"sync"
	"time"

	"notes/internal/types"
)

const (
	DefaultTimeout = 3500 * time.Millisecond
	MaxToasts      = 4
)

// Timer is the handle returned by a Scheduler.
type Timer interface {
	Stop() bool
}

// Scheduler runs fn once after d elapses.
type Scheduler func(d time.Duration, fn func()) Timer

func afterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

type Option func(*Queue)

func WithScheduler(s Scheduler) Option {
	return func(q *Queue) {
		if s != nil {
			q.schedule = s
		}
	}
}

func WithDefaultTimeout(d time.Duration) Option {
	return func(q *Queue) {
		if d >= 0 {
			q.defaultTimeout = d
		}
	}
}

type Queue struct {
	mu             sync.Mutex
	nextID         int64
	toasts         []types.Toast
	timers         map[int64]Timer
	listeners      []func()
	schedule       Scheduler
	defaultTimeout time.Duration
}

func NewQueue(opts ...Option) *Queue {
	q := &Queue{
		timers:         map[int64]Timer{},
		schedule:       afterFunc,
		defaultTimeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// OnChange registers fn to run after every change to the queue. fn runs
// outside the queue lock and may be called from timer goroutines.
func (q *Queue) OnChange(fn func()) {
	if q == nil || fn == nil {
		return
	}
	q.mu.Lock()
	q.listeners = append(q.listeners, fn)
	q.mu.Unlock()
}

func (q *Queue) Info(message string) int64 {
	return q.Push(types.ToastInfo, message, -1)
}

func (q *Queue) Success(message string) int64 {
	return q.Push(types.ToastSuccess, message, -1)
}

func (q *Queue) Error(message string) int64 {
	return q.Push(types.ToastError, message, -1)
}

// Push adds a toast in front of the queue and schedules its removal after
// timeout. A negative timeout selects the queue default. Only the MaxToasts
// newest toasts are kept.
func (q *Queue) Push(kind types.ToastKind, message string, timeout time.Duration) int64 {
	if q == nil {
		return 0
	}
	if !kind.Valid() {
		kind = types.ToastInfo
	}

	q.mu.Lock()
	if timeout < 0 {
		timeout = q.defaultTimeout
	}
	q.nextID++
	id := q.nextID
	q.toasts = append([]types.Toast{{ID: id, Kind: kind, Message: message}}, q.toasts...)
	if len(q.toasts) > MaxToasts {
		for _, evicted := range q.toasts[MaxToasts:] {
			q.stopTimerLocked(evicted.ID)
		}
		q.toasts = append([]types.Toast(nil), q.toasts[:MaxToasts]...)
	}
	q.timers[id] = q.schedule(timeout, func() { q.Dismiss(id) })
	listeners := q.listenersLocked()
	q.mu.Unlock()

	notify(listeners)
	return id
}

// Dismiss removes the toast immediately. Unknown ids are ignored.
func (q *Queue) Dismiss(id int64) {
	if q == nil {
		return
	}
	q.mu.Lock()
	idx := -1
	for i, t := range q.toasts {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		q.mu.Unlock()
		return
	}
	q.toasts = append(q.toasts[:idx:idx], q.toasts[idx+1:]...)
	q.stopTimerLocked(id)
	listeners := q.listenersLocked()
	q.mu.Unlock()

	notify(listeners)
}

// DismissNewest removes the most recent toast, if any.
func (q *Queue) DismissNewest() bool {
	if q == nil {
		return false
	}
	q.mu.Lock()
	if len(q.toasts) == 0 {
		q.mu.Unlock()
		return false
	}
	id := q.toasts[0].ID
	q.mu.Unlock()
	q.Dismiss(id)
	return true
}

// Toasts returns a copy of the queue, newest first.
func (q *Queue) Toasts() []types.Toast {
	if q == nil {
		return nil
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]types.Toast(nil), q.toasts...)
}

func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.toasts)
}

func (q *Queue) stopTimerLocked(id int64) {
	if timer, ok := q.timers[id]; ok {
		if timer != nil {
			timer.Stop()
		}
		delete(q.timers, id)
	}
}

func (q *Queue) listenersLocked() []func() {
	if len(q.listeners) == 0 {
		return nil
	}
	return append([]func(){}, q.listeners...)
}

func notify(listeners []func()) {
	for _, fn := range listeners {
		fn()
	}
}
