package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runScheduler(t *testing.T, s *Scheduler) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func waitFired(t *testing.T, fired <-chan string) string {
	t.Helper()
	select {
	case name := <-fired:
		return name
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a callback to fire")
		return ""
	}
}

func TestScheduler_FiresInDeadlineOrder(t *testing.T) {
	start := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)
	s := New(clock)

	fired := make(chan string, 2)
	s.Schedule(start.Add(10*time.Minute), func() { fired <- "late" })
	s.Schedule(start.Add(5*time.Minute), func() { fired <- "early" })
	require.Equal(t, 2, s.Pending())

	runScheduler(t, s)
	clock.Advance(15 * time.Minute)

	assert.Equal(t, "early", waitFired(t, fired))
	assert.Equal(t, "late", waitFired(t, fired))
	assert.Equal(t, 0, s.Pending())
}

func TestScheduler_SameDeadlineKeepsScheduleOrder(t *testing.T) {
	start := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)
	s := New(clock)

	deadline := start.Add(time.Minute)
	fired := make(chan string, 3)
	for _, name := range []string{"first", "second", "third"} {
		name := name
		s.Schedule(deadline, func() { fired <- name })
	}

	runScheduler(t, s)
	clock.Advance(time.Minute)

	assert.Equal(t, "first", waitFired(t, fired))
	assert.Equal(t, "second", waitFired(t, fired))
	assert.Equal(t, "third", waitFired(t, fired))
}

func TestScheduler_PastDeadlineFiresWithoutAdvance(t *testing.T) {
	start := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)
	s := New(clock)
	runScheduler(t, s)

	fired := make(chan string, 1)
	s.Schedule(start.Add(-time.Minute), func() { fired <- "overdue" })

	assert.Equal(t, "overdue", waitFired(t, fired))
}

func TestScheduler_PartialAdvanceLeavesLaterTasksArmed(t *testing.T) {
	start := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)
	s := New(clock)

	fired := make(chan string, 2)
	s.Schedule(start.Add(5*time.Minute), func() { fired <- "soon" })
	s.Schedule(start.Add(time.Hour), func() { fired <- "later" })

	runScheduler(t, s)
	clock.Advance(10 * time.Minute)

	assert.Equal(t, "soon", waitFired(t, fired))
	require.Eventually(t, func() bool { return s.Pending() == 1 }, 2*time.Second, 10*time.Millisecond)

	clock.Advance(time.Hour)
	assert.Equal(t, "later", waitFired(t, fired))
}

func TestScheduler_RunStopsOnContextCancel(t *testing.T) {
	s := New(NewManualClock(time.Now()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestManualClock_AdvanceFiresDueWaiters(t *testing.T) {
	start := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)

	short := clock.After(time.Minute)
	long := clock.After(time.Hour)

	clock.Advance(2 * time.Minute)
	select {
	case at := <-short:
		assert.Equal(t, start.Add(2*time.Minute), at)
	default:
		t.Fatal("one-minute waiter did not fire")
	}
	select {
	case <-long:
		t.Fatal("one-hour waiter fired early")
	default:
	}

	assert.Equal(t, start.Add(2*time.Minute), clock.Now())
}
