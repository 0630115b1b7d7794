// Package memory implements the memory-matching game engine: board
// generation, the flip/match state machine, the countdown timer and
// save/restore of sessions. It has no UI dependencies; display, sound,
// storage and timing are reached through the ports in ports.go.
package memory

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-memory/internal/config"
)

const (
	// MatchPoints is awarded for every matched pair.
	MatchPoints = 10
	// MismatchDelay is how long a wrong pair stays face up.
	MismatchDelay = 600 * time.Millisecond
	// TickInterval is the countdown resolution.
	TickInterval = time.Second
)

// Options wires an Engine to its collaborators.
// Only Scheduler is required.
type Options struct {
	Presenter Presenter
	Audio     Audio
	Store     Persistence
	Scheduler Scheduler
	Logger    *log.Logger
	Rand      *rand.Rand    // Nil seeds from the clock
	NewID     func() string // Session ID generator; nil uses UUIDs
}

// Engine drives a single live Session. It is not safe for concurrent use:
// every method and every scheduled callback must run on one goroutine.
type Engine struct {
	ui     Presenter
	audio  Audio
	store  Persistence
	sched  Scheduler
	logger *log.Logger
	rng    *rand.Rand
	newID  func() string

	session *Session
}

// NewEngine creates an engine with no live session.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		ui:     opts.Presenter,
		audio:  opts.Audio,
		store:  opts.Store,
		sched:  opts.Scheduler,
		logger: opts.Logger,
		rng:    opts.Rand,
		newID:  opts.NewID,
	}

	if e.ui == nil {
		e.ui = nopPresenter{}
	}
	if e.audio == nil {
		e.audio = &nopAudio{}
	}
	if e.store == nil {
		e.store = nopPersistence{}
	}
	if e.sched == nil {
		panic("memory: NewEngine requires a Scheduler")
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.newID == nil {
		e.newID = uuid.NewString
	}
	return e
}

// State returns a copy of the live session, or the zero State if no
// level has been chosen yet.
func (e *Engine) State() State {
	if e.session == nil {
		return State{}
	}
	return e.session.State()
}

// HasSession reports whether a level has been chosen.
func (e *Engine) HasSession() bool {
	return e.session != nil
}

// Boot shows the start screen with the stored high score.
func (e *Engine) Boot() {
	e.ui.ShowScreen(ScreenStart)
	e.ui.UpdateHighScore(e.store.HighScore())
}

// Start moves from the start screen to level selection.
func (e *Engine) Start() {
	e.ui.ShowScreen(ScreenLevel)
}

// ChooseLevel enters the game screen for level. A saved session for the
// same level is restored; otherwise a fresh board is dealt.
// Returns false for an unknown level.
func (e *Engine) ChooseLevel(level config.Difficulty) bool {
	if !level.Valid() {
		e.logger.Warn("ignoring unknown level", "level", level)
		return false
	}

	restored := false
	if saved, ok := e.Load(); ok && saved.Level == level {
		restored = e.RestoreBoard(saved)
	}
	if !restored {
		e.NewBoard(level)
		e.StartTimer()
	}

	e.ui.ShowScreen(ScreenGame)
	return true
}

// NewBoard replaces the live session with a fresh one for level and
// renders a shuffled face-down board. The timer is not started.
// Returns false for an unknown level.
func (e *Engine) NewBoard(level config.Difficulty) bool {
	cfg, ok := config.ConfigFor(level)
	if !ok {
		e.logger.Warn("cannot build board for unknown level", "level", level)
		return false
	}

	s := newSession(e.newID(), level, cfg)
	s.cards = dealCards(cfg.Cards, e.rng)
	e.replaceSession(s)

	e.ui.RenderBoard(s.Cards(), cfg.Columns(), level)
	e.ui.UpdateStats(0, cfg.TimeSeconds, 0)

	e.logger.Info("new board", "session", s.id, "level", level, "cards", cfg.Cards)
	return true
}

// RestoreBoard rebuilds a session from a snapshot and restarts the timer
// at the saved remaining time. The board is dealt again with a fresh
// shuffle and the first Matched cards by position are marked matched.
// Returns false, leaving the live session untouched, if the snapshot is
// invalid.
func (e *Engine) RestoreBoard(snap Snapshot) bool {
	if err := snap.Validate(); err != nil {
		e.logger.Warn("discarding saved session", "error", err)
		return false
	}
	cfg, _ := config.ConfigFor(snap.Level)

	id := snap.SessionID
	if id == "" {
		id = e.newID()
	}

	s := newSession(id, snap.Level, cfg)
	s.remaining = snap.RemainingTime
	s.score = snap.Score
	s.matched = snap.Matched
	s.cards = dealCards(cfg.Cards, e.rng)
	for i := 0; i < snap.Matched; i++ {
		s.cards[i].State = CardMatched
	}
	e.replaceSession(s)

	e.ui.RenderBoard(s.Cards(), cfg.Columns(), snap.Level)
	e.ui.UpdateStats(snap.Score, snap.RemainingTime, snap.Matched)

	e.StartTimer()

	e.logger.Info("restored board", "session", s.id, "level", snap.Level,
		"score", snap.Score, "matched", snap.Matched, "remaining", snap.RemainingTime)
	return true
}

// replaceSession installs s as the live session after releasing the
// timers of the previous one.
func (e *Engine) replaceSession(s *Session) {
	if old := e.session; old != nil {
		old.stopTimer()
		old.cancelReversion()
	}
	e.session = s
}

// Restart clears the saved session and deals a fresh board for the
// current level.
func (e *Engine) Restart() {
	if e.session == nil {
		return
	}
	level := e.session.level
	e.ClearSaved()
	e.NewBoard(level)
	e.StartTimer()
}

// Back saves the session, stops the timer and returns to level selection.
func (e *Engine) Back() {
	e.Save()
	e.StopTimer()
	e.ui.ShowScreen(ScreenLevel)
}

// ModalRestart dismisses the end-of-game summary and restarts.
func (e *Engine) ModalRestart() {
	e.ui.HideModal()
	e.Restart()
}

// ModalBack dismisses the end-of-game summary and returns to level
// selection without saving.
func (e *Engine) ModalBack() {
	e.ui.HideModal()
	e.StopTimer()
	e.ui.ShowScreen(ScreenLevel)
}

// TogglePause flips the paused flag and returns the new value. The timer
// keeps firing while paused; ticks and clicks become no-ops.
func (e *Engine) TogglePause() bool {
	s := e.session
	if s == nil {
		return false
	}
	s.paused = !s.paused
	e.logger.Debug("pause toggled", "session", s.id, "paused", s.paused)
	return s.paused
}

// ToggleMute flips audio muting and returns the new value.
func (e *Engine) ToggleMute() bool {
	return e.audio.ToggleMute()
}

// Save writes the persistable part of a session still in play.
func (e *Engine) Save() {
	s := e.session
	if s == nil || s.outcome != OutcomePlaying {
		return
	}
	e.store.SaveSnapshot(s.snapshot())
	e.logger.Debug("session saved", "session", s.id, "level", s.level)
}

// Load returns the saved snapshot, if any.
func (e *Engine) Load() (Snapshot, bool) {
	return e.store.LoadSnapshot()
}

// ClearSaved deletes the saved snapshot.
func (e *Engine) ClearSaved() {
	e.store.ClearSnapshot()
}
