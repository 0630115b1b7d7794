package memory

import (
	"time"

	"github.com/vovakirdan/tui-memory/internal/config"
)

// Screen names a top-level view the presentation layer can show.
type Screen string

const (
	ScreenStart Screen = "start"
	ScreenLevel Screen = "level"
	ScreenGame  Screen = "game"
)

// Presenter receives display intents from the engine.
// Implementations never call back into the engine synchronously.
type Presenter interface {
	ShowScreen(s Screen)
	// RenderBoard replaces the board with face-down cards laid out in a
	// square grid of the given column count.
	RenderBoard(cards []Card, columns int, level config.Difficulty)
	// UpdateCard reports a single card state change.
	UpdateCard(c Card)
	UpdateStats(score, remainingSeconds, matched int)
	UpdateHighScore(value int)
	ShowWin(score int)
	ShowGameOver(score int)
	HideModal()
}

// Cue is a named sound event.
type Cue string

const (
	CueFlip  Cue = "flip"
	CueMatch Cue = "match"
	CueWrong Cue = "wrong"
	CueWin   Cue = "win"
)

// Cues returns every cue the engine can play.
func Cues() []Cue {
	return []Cue{CueFlip, CueMatch, CueWrong, CueWin}
}

// Audio plays cues. A muted player suppresses all playback.
type Audio interface {
	Play(c Cue)
	// ToggleMute flips the mute state and returns the new value.
	ToggleMute() bool
}

// Persistence is the durable key-value store behind the game.
// Implementations treat failures as best effort: reads fall back to
// zero values and writes are dropped.
type Persistence interface {
	HighScore() int
	SetHighScore(score int)
	SaveSnapshot(s Snapshot)
	LoadSnapshot() (Snapshot, bool)
	ClearSnapshot()
}

// Result describes a finished game.
type Result struct {
	SessionID     string
	Level         config.Difficulty
	Score         int
	Outcome       Outcome
	RemainingTime int
}

// ResultRecorder is an optional Persistence extension that keeps a history
// of finished games.
type ResultRecorder interface {
	RecordResult(r Result)
}

// Timer is a handle to a scheduled callback. Stop is idempotent.
type Timer interface {
	Stop()
}

// Scheduler runs callbacks later on the same goroutine that drives the
// engine. Callbacks must never run concurrently with engine calls.
type Scheduler interface {
	// Every runs fn every d until stopped.
	Every(d time.Duration, fn func()) Timer
	// After runs fn once after d unless stopped first.
	After(d time.Duration, fn func()) Timer
}

type nopPresenter struct{}

func (nopPresenter) ShowScreen(Screen)                          {}
func (nopPresenter) RenderBoard([]Card, int, config.Difficulty) {}
func (nopPresenter) UpdateCard(Card)                            {}
func (nopPresenter) UpdateStats(int, int, int)                  {}
func (nopPresenter) UpdateHighScore(int)                        {}
func (nopPresenter) ShowWin(int)                                {}
func (nopPresenter) ShowGameOver(int)                           {}
func (nopPresenter) HideModal()                                 {}

type nopAudio struct{ muted bool }

func (*nopAudio) Play(Cue) {}

func (a *nopAudio) ToggleMute() bool {
	a.muted = !a.muted
	return a.muted
}

// nopPersistence stands in for a missing storage backend.
type nopPersistence struct{}

func (nopPersistence) HighScore() int                 { return 0 }
func (nopPersistence) SetHighScore(int)               {}
func (nopPersistence) SaveSnapshot(Snapshot)          {}
func (nopPersistence) LoadSnapshot() (Snapshot, bool) { return Snapshot{}, false }
func (nopPersistence) ClearSnapshot()                 {}
