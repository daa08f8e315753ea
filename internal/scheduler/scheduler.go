// Package scheduler runs deadline callbacks for flight lifecycle
// transitions. One goroutine owns a priority queue of (deadline, callback)
// pairs instead of a timer per flight, which bounds resources and lets
// tests drive the queue with a manual clock.
package scheduler

import (
	"container/heap"
	"context"
	"sync"
	"time"
)

type task struct {
	at  time.Time
	seq uint64
	fn  func()
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].at.Equal(q[j].at) {
		return q[i].seq < q[j].seq
	}
	return q[i].at.Before(q[j].at)
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) { *q = append(*q, x.(*task)) }

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

// Scheduler dispatches callbacks at or after their deadline, in deadline
// order. There is no cancellation: once armed, a deadline stays armed, and
// the callbacks themselves are responsible for idempotence.
type Scheduler struct {
	clock Clock

	mu    sync.Mutex
	queue taskQueue
	seq   uint64
	wake  chan struct{}
}

func New(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	s := &Scheduler{clock: clock, wake: make(chan struct{}, 1)}
	heap.Init(&s.queue)
	return s
}

// Schedule arms fn to run at or after the given instant. Deadlines in the
// past fire on the next loop iteration.
func (s *Scheduler) Schedule(at time.Time, fn func()) {
	s.mu.Lock()
	s.seq++
	heap.Push(&s.queue, &task{at: at, seq: s.seq, fn: fn})
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Run dispatches due callbacks until ctx is cancelled. Callbacks run on the
// scheduler goroutine and must not block on I/O.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		now := s.clock.Now()

		s.mu.Lock()
		var due []*task
		for s.queue.Len() > 0 && !s.queue[0].at.After(now) {
			due = append(due, heap.Pop(&s.queue).(*task))
		}
		var wait <-chan time.Time
		if s.queue.Len() > 0 {
			wait = s.clock.After(s.queue[0].at.Sub(now))
		}
		s.mu.Unlock()

		for _, t := range due {
			t.fn()
		}
		if len(due) > 0 {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.wake:
		case <-wait:
		}
	}
}

// Pending reports how many callbacks are still armed.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Len()
}
