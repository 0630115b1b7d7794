package memory

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-memory/internal/config"
)

// ErrInvalidSnapshot is returned when a snapshot cannot seed a session.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Snapshot is the persisted subset of a Session.
// Selection, pause and timer state are not kept.
type Snapshot struct {
	SessionID     string
	Level         config.Difficulty
	TotalCards    int
	RemainingTime int
	Score         int
	Matched       int
}

// Validate checks that the snapshot describes a resumable session.
// Finished sessions (no time left, every card matched) are rejected.
func (s Snapshot) Validate() error {
	cfg, ok := config.ConfigFor(s.Level)
	if !ok {
		return fmt.Errorf("%w: unknown level %q", ErrInvalidSnapshot, s.Level)
	}
	if s.TotalCards != cfg.Cards {
		return fmt.Errorf("%w: %d cards for level %s, want %d", ErrInvalidSnapshot, s.TotalCards, s.Level, cfg.Cards)
	}
	if s.Matched < 0 || s.Matched >= s.TotalCards || s.Matched%2 != 0 {
		return fmt.Errorf("%w: matched count %d", ErrInvalidSnapshot, s.Matched)
	}
	if s.RemainingTime <= 0 {
		return fmt.Errorf("%w: remaining time %d", ErrInvalidSnapshot, s.RemainingTime)
	}
	if s.Score < 0 {
		return fmt.Errorf("%w: score %d", ErrInvalidSnapshot, s.Score)
	}
	return nil
}
