// Package tui provides the Bubble Tea front end for the memory game.
// It implements the engine's presentation port, turns engine timers into
// tea.Tick messages and maps keys and mouse clicks to engine calls.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memory/internal/memory"
)

// timerFiredMsg is delivered when a scheduled engine callback is due.
type timerFiredMsg struct {
	id int
}

// Scheduler implements memory.Scheduler on top of the Bubble Tea event
// loop. Callbacks run inside Update, so they never race with key or mouse
// handling. Commands queued by Every and After are collected with Drain
// after every engine call.
type Scheduler struct {
	nextID  int
	timers  map[int]*teaTimer
	pending []tea.Cmd
}

type teaTimer struct {
	sched  *Scheduler
	id     int
	every  time.Duration
	fn     func()
	repeat bool
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[int]*teaTimer)}
}

// Every runs fn every d until the returned timer is stopped.
func (s *Scheduler) Every(d time.Duration, fn func()) memory.Timer {
	return s.add(d, fn, true)
}

// After runs fn once after d unless the returned timer is stopped first.
func (s *Scheduler) After(d time.Duration, fn func()) memory.Timer {
	return s.add(d, fn, false)
}

func (s *Scheduler) add(d time.Duration, fn func(), repeat bool) *teaTimer {
	s.nextID++
	t := &teaTimer{sched: s, id: s.nextID, every: d, fn: fn, repeat: repeat}
	s.timers[t.id] = t
	s.queue(t)
	return t
}

func (s *Scheduler) queue(t *teaTimer) {
	id := t.id
	s.pending = append(s.pending, tea.Tick(t.every, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
}

// Fire runs the callback for id. Messages for stopped timers are dropped.
func (s *Scheduler) Fire(id int) {
	t, ok := s.timers[id]
	if !ok {
		return
	}
	if t.repeat {
		s.queue(t)
	} else {
		delete(s.timers, id)
	}
	t.fn()
}

// Drain returns the commands queued since the last call.
func (s *Scheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Active returns the number of timers that have not been stopped or fired.
func (s *Scheduler) Active() int {
	return len(s.timers)
}

// Stop cancels the timer. Already queued tick messages are ignored.
func (t *teaTimer) Stop() {
	delete(t.sched.timers, t.id)
}

var _ memory.Scheduler = (*Scheduler)(nil)
