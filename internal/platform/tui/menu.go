package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memory/internal/config"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
)

// startView renders the start screen.
func startView(highScore, width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  M E M O R Y  ", width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Flip the cards, find the pairs, beat the clock.", width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("High score: %d", highScore), width))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(centerText("Enter: Start  |  T: Scores  |  Q: Quit", width)))
	b.WriteString("\n")

	return b.String()
}

// levelView renders the level picker with cursor on levels[cursor].
func levelView(levels []config.Difficulty, cursor, highScore, width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("Select a level", width)))
	b.WriteString("\n\n")

	for i, d := range levels {
		cfg, _ := config.ConfigFor(d)
		line := fmt.Sprintf("%d. %-7s %2d cards  %s",
			i+1, d.Title(), cfg.Cards, formatSeconds(cfg.TimeSeconds))

		if i == cursor {
			b.WriteString(centerText(selectedStyle.Render("> "+line+" "), width))
		} else {
			b.WriteString(centerText("  "+line+" ", width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("High score: %d", highScore), width))
	b.WriteString("\n\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  T: Scores  |  Esc: Back  |  Q: Quit"
	b.WriteString(dimStyle.Render(centerText(controls, width)))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
