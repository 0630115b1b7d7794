package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/memory"
)

// Persistence adapts a Store to the engine's persistence port.
// Errors are logged and swallowed; a nil Store behaves as empty storage.
type Persistence struct {
	store  *Store
	logger *log.Logger
}

// NewPersistence wraps store. Both arguments may be nil.
func NewPersistence(store *Store, logger *log.Logger) *Persistence {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Persistence{store: store, logger: logger}
}

// HighScore returns the stored high score, or 0 when unavailable.
func (p *Persistence) HighScore() int {
	if p.store == nil {
		return 0
	}
	score, err := p.store.HighScore()
	if err != nil {
		p.logger.Warn("could not read high score", "error", err)
		return 0
	}
	return score
}

// SetHighScore stores score as the new high score.
func (p *Persistence) SetHighScore(score int) {
	if p.store == nil {
		return
	}
	if err := p.store.SetHighScore(score); err != nil {
		p.logger.Warn("could not save high score", "score", score, "error", err)
	}
}

// SaveSnapshot writes the saved session slot.
func (p *Persistence) SaveSnapshot(s memory.Snapshot) {
	if p.store == nil {
		return
	}
	rec := SessionRecord{
		SessionID:     s.SessionID,
		Level:         string(s.Level),
		TotalCards:    s.TotalCards,
		RemainingTime: s.RemainingTime,
		Score:         s.Score,
		Matched:       s.Matched,
	}
	if err := p.store.SaveSession(rec); err != nil {
		p.logger.Warn("could not save session", "session", s.SessionID, "error", err)
	}
}

// LoadSnapshot reads the saved session slot.
func (p *Persistence) LoadSnapshot() (memory.Snapshot, bool) {
	if p.store == nil {
		return memory.Snapshot{}, false
	}
	rec, err := p.store.LoadSession()
	if err != nil {
		p.logger.Warn("could not load session", "error", err)
		return memory.Snapshot{}, false
	}
	if rec == nil {
		return memory.Snapshot{}, false
	}
	return memory.Snapshot{
		SessionID:     rec.SessionID,
		Level:         config.Difficulty(rec.Level),
		TotalCards:    rec.TotalCards,
		RemainingTime: rec.RemainingTime,
		Score:         rec.Score,
		Matched:       rec.Matched,
	}, true
}

// ClearSnapshot empties the saved session slot.
func (p *Persistence) ClearSnapshot() {
	if p.store == nil {
		return
	}
	if err := p.store.ClearSession(); err != nil {
		p.logger.Warn("could not clear session", "error", err)
	}
}

// RecordResult appends a finished game to the score history.
func (p *Persistence) RecordResult(r memory.Result) {
	if p.store == nil {
		return
	}
	entry := ScoreEntry{
		SessionID:     r.SessionID,
		Level:         string(r.Level),
		Score:         r.Score,
		Outcome:       r.Outcome.String(),
		RemainingTime: r.RemainingTime,
	}
	if _, err := p.store.SaveScore(entry); err != nil {
		p.logger.Warn("could not record result", "session", r.SessionID, "error", err)
	}
}

// Ensure Persistence implements the engine ports
var (
	_ memory.Persistence    = (*Persistence)(nil)
	_ memory.ResultRecorder = (*Persistence)(nil)
)
