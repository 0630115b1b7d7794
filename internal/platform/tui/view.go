package tui

import (
	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/memory"
)

// modalKind is the end-of-game summary currently on screen.
type modalKind int

const (
	modalNone modalKind = iota
	modalWin
	modalGameOver
)

// boardView is the display state the engine writes through the
// presentation port. View reads it back when drawing.
type boardView struct {
	screen    memory.Screen
	level     config.Difficulty
	cards     []memory.Card
	columns   int
	score     int
	remaining int
	matched   int
	highScore int
	modal     modalKind
	final     int // Score shown in the modal
}

func newBoardView() *boardView {
	return &boardView{screen: memory.ScreenStart}
}

func (v *boardView) ShowScreen(s memory.Screen) {
	v.screen = s
}

func (v *boardView) RenderBoard(cards []memory.Card, columns int, level config.Difficulty) {
	v.cards = append(v.cards[:0], cards...)
	v.columns = columns
	v.level = level
	v.modal = modalNone
}

func (v *boardView) UpdateCard(c memory.Card) {
	if c.Index < 0 || c.Index >= len(v.cards) {
		return
	}
	v.cards[c.Index] = c
}

func (v *boardView) UpdateStats(score, remainingSeconds, matched int) {
	v.score = score
	v.remaining = remainingSeconds
	v.matched = matched
}

func (v *boardView) UpdateHighScore(value int) {
	v.highScore = value
}

func (v *boardView) ShowWin(score int) {
	v.modal = modalWin
	v.final = score
}

func (v *boardView) ShowGameOver(score int) {
	v.modal = modalGameOver
	v.final = score
}

func (v *boardView) HideModal() {
	v.modal = modalNone
}

var _ memory.Presenter = (*boardView)(nil)
