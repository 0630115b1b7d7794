package tui

import (
	"testing"
	"time"
)

func timerID(t *testing.T, tm interface{ Stop() }) int {
	t.Helper()
	tt, ok := tm.(*teaTimer)
	if !ok {
		t.Fatalf("timer has type %T, want *teaTimer", tm)
	}
	return tt.id
}

func TestSchedulerAfterFiresOnce(t *testing.T) {
	s := NewScheduler()
	calls := 0
	id := timerID(t, s.After(600*time.Millisecond, func() { calls++ }))

	if s.Drain() == nil {
		t.Fatal("Drain() = nil, want tick command")
	}
	if s.Drain() != nil {
		t.Error("second Drain() should be empty")
	}

	s.Fire(id)
	s.Fire(id)
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
	if s.Active() != 0 {
		t.Errorf("Active() = %d, want 0", s.Active())
	}
	if s.Drain() != nil {
		t.Error("one-shot timer should not queue another tick")
	}
}

func TestSchedulerEveryRequeues(t *testing.T) {
	s := NewScheduler()
	calls := 0
	id := timerID(t, s.Every(time.Second, func() { calls++ }))
	s.Drain()

	for i := 0; i < 3; i++ {
		s.Fire(id)
		if s.Drain() == nil {
			t.Fatalf("tick %d did not queue the next tick", i+1)
		}
	}
	if calls != 3 {
		t.Errorf("callback ran %d times, want 3", calls)
	}
	if s.Active() != 1 {
		t.Errorf("Active() = %d, want 1", s.Active())
	}
}

func TestSchedulerStopDropsPendingTick(t *testing.T) {
	s := NewScheduler()
	calls := 0
	tm := s.Every(time.Second, func() { calls++ })
	id := timerID(t, tm)
	s.Drain()

	tm.Stop()
	tm.Stop()
	s.Fire(id)

	if calls != 0 {
		t.Errorf("stopped timer ran %d times", calls)
	}
	if s.Drain() != nil {
		t.Error("stopped timer should not queue ticks")
	}
}

func TestSchedulerStopInsideCallback(t *testing.T) {
	s := NewScheduler()
	calls := 0
	var tm interface{ Stop() }
	tm = s.Every(time.Second, func() {
		calls++
		tm.Stop()
	})
	id := timerID(t, tm)

	s.Fire(id)
	s.Fire(id)
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
	if s.Active() != 0 {
		t.Errorf("Active() = %d, want 0", s.Active())
	}
}

func TestSchedulerUnknownID(t *testing.T) {
	s := NewScheduler()
	s.Fire(42)
	if s.Drain() != nil {
		t.Error("Drain() after unknown Fire should be nil")
	}
}
