// Package audio plays game sound cues as terminal bells.
package audio

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/memory"
)

// bell is the ASCII BEL control character.
const bell = "\a"

// Player implements memory.Audio by ringing the terminal bell for enabled cues.
type Player struct {
	mu      sync.Mutex
	out     io.Writer
	logger  *log.Logger
	muted   bool
	ring    bool
	enabled map[memory.Cue]bool
}

// NewPlayer creates a player writing bells to out.
// A nil out makes the player silent but still tracks mute state.
func NewPlayer(out io.Writer, settings config.AudioSettings, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	known := make(map[memory.Cue]bool)
	for _, c := range memory.Cues() {
		known[c] = true
	}
	enabled := make(map[memory.Cue]bool)
	if len(settings.Cues) == 0 {
		enabled = known
	}
	for _, name := range settings.Cues {
		c := memory.Cue(name)
		if !known[c] {
			logger.Warn("unknown audio cue in config", "cue", name)
			continue
		}
		enabled[c] = true
	}

	return &Player{
		out:     out,
		logger:  logger,
		muted:   settings.Muted,
		ring:    settings.Bell,
		enabled: enabled,
	}
}

// Play rings the bell for c unless muted or the cue is disabled.
func (p *Player) Play(c memory.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted || !p.ring || !p.enabled[c] || p.out == nil {
		return
	}
	if _, err := io.WriteString(p.out, bell); err != nil {
		p.logger.Debug("bell write failed", "cue", c, "error", err)
	}
}

// ToggleMute flips the mute state and returns the new value.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	p.logger.Debug("audio mute toggled", "muted", p.muted)
	return p.muted
}

// Muted reports whether playback is suppressed.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

var _ memory.Audio = (*Player)(nil)
