package memory

import (
	"github.com/vovakirdan/tui-memory/internal/config"
)

// Outcome is how a session ended, if it has.
type Outcome int

const (
	OutcomePlaying  Outcome = iota
	OutcomeWon              // Every card matched
	OutcomeTimeOver         // Countdown reached zero
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeTimeOver:
		return "time_over"
	default:
		return "unknown"
	}
}

// Session is the authoritative record of one game in progress.
// It is exclusively owned by an Engine.
//
// Invariants: 0 <= matched <= totalCards, matched is even,
// len(selection) <= 2, remaining >= 0.
type Session struct {
	id         string
	level      config.Difficulty
	totalCards int
	remaining  int
	score      int
	matched    int
	paused     bool
	outcome    Outcome

	cards     []Card
	selection []int // Indices of flipped, unmatched cards in click order

	timer     Timer // Active countdown, nil when stopped
	reversion Timer // Pending mismatch reversion
}

func newSession(id string, level config.Difficulty, cfg config.LevelConfig) *Session {
	return &Session{
		id:         id,
		level:      level,
		totalCards: cfg.Cards,
		remaining:  cfg.TimeSeconds,
	}
}

// State is a read-only copy of a Session.
type State struct {
	ID            string
	Level         config.Difficulty
	TotalCards    int
	RemainingTime int
	Score         int
	Matched       int
	Paused        bool
	Outcome       Outcome
	TimerActive   bool
	Selection     []int
	Cards         []Card
}

// State returns a copy of the session's current state.
func (s *Session) State() State {
	return State{
		ID:            s.id,
		Level:         s.level,
		TotalCards:    s.totalCards,
		RemainingTime: s.remaining,
		Score:         s.score,
		Matched:       s.matched,
		Paused:        s.paused,
		Outcome:       s.outcome,
		TimerActive:   s.timer != nil,
		Selection:     append([]int(nil), s.selection...),
		Cards:         s.Cards(),
	}
}

// Cards returns a copy of the board.
func (s *Session) Cards() []Card {
	return append([]Card(nil), s.cards...)
}

// snapshot extracts the persistable subset of the session.
func (s *Session) snapshot() Snapshot {
	return Snapshot{
		SessionID:     s.id,
		Level:         s.level,
		TotalCards:    s.totalCards,
		RemainingTime: s.remaining,
		Score:         s.score,
		Matched:       s.matched,
	}
}

// stopTimer stops the countdown. Safe to call when no timer runs.
func (s *Session) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// cancelReversion drops a pending mismatch reversion.
func (s *Session) cancelReversion() {
	if s.reversion != nil {
		s.reversion.Stop()
		s.reversion = nil
	}
}
