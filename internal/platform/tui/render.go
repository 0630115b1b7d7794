package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/memory"
)

// Card cell sizing, in terminal cells.
const (
	cardGap  = 1
	cardMaxW = 7
	cardMaxH = 3
	cardMinW = 4
	cardMinH = 1
)

// Rows above and below the board on the game screen.
const (
	headerHeight = 2
	footerHeight = 2
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	statsStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("57")).
			Padding(1, 4).
			Align(lipgloss.Center)
	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// boardGrid lays the cards out inside a board area of w x h cells.
func boardGrid(count, columns, w, h int) core.Grid {
	return core.FitGrid(core.NewRect(0, 0, w, h), count, columns, cardGap,
		cardMaxW, cardMaxH, cardMinW, cardMinH)
}

// drawBoard draws every card into s, highlighting the card under the cursor.
func drawBoard(s *core.Screen, g core.Grid, cards []memory.Card, cursor int) {
	s.Clear()
	for i, c := range cards {
		drawCard(s, g.CellRect(i), c, i == cursor)
	}
}

func drawCard(s *core.Screen, r core.Rect, c memory.Card, focused bool) {
	label, color := cardFace(c)

	frame := core.ColorGray
	if c.State == memory.CardMatched {
		frame = core.ColorGreen
	}
	if focused {
		frame = core.ColorBrightYellow
	}

	if r.H >= 3 {
		s.DrawBox(r, frame)
		_, cy := r.Center()
		s.DrawTextColored(r.X+(r.W-len(label))/2, cy, label, color)
		return
	}

	// Flat cards: [ label ]
	s.DrawRect(r, ' ', core.ColorDefault)
	s.SetColored(r.X, r.Y, '[', frame)
	s.SetColored(r.Right()-1, r.Y, ']', frame)
	s.DrawTextColored(r.X+(r.W-len(label))/2, r.Y, label, color)
}

// cardFace returns the text and color for a card.
func cardFace(c memory.Card) (string, core.Color) {
	if !c.FaceUp() {
		return "?", core.ColorBlue
	}
	if c.State == memory.CardMatched {
		return strconv.Itoa(c.Value), core.ColorGreen
	}
	return strconv.Itoa(c.Value), core.FaceColor(c.Value)
}

// statsLine renders the score bar above the board.
func statsLine(v *boardView, paused, muted bool, width int) string {
	total := len(v.cards)
	parts := []string{
		v.level.Title(),
		fmt.Sprintf("Score %d", v.score),
		fmt.Sprintf("Time %s", formatSeconds(v.remaining)),
		fmt.Sprintf("Pairs %d/%d", v.matched/2, total/2),
		fmt.Sprintf("Best %d", v.highScore),
	}
	line := strings.Join(parts, "   ")

	var flags []string
	if paused && v.modal == modalNone {
		flags = append(flags, "PAUSED")
	}
	if muted {
		flags = append(flags, "MUTED")
	}
	if len(flags) > 0 {
		line += "   " + strings.Join(flags, " ")
	}
	return statsStyle.Render(centerText(line, width))
}

// renderModal draws the end-of-game summary centered in a w x h area.
func renderModal(v *boardView, w, h int) string {
	title := "TIME OVER"
	if v.modal == modalWin {
		title = "YOU WIN!"
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		modalTitleStyle.Render(title),
		"",
		fmt.Sprintf("Final score: %d", v.final),
		fmt.Sprintf("High score: %d", v.highScore),
		"",
		dimStyle.Render("r: play again   b: levels"),
	)
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, modalStyle.Render(body))
}

func formatSeconds(s int) string {
	if s < 0 {
		s = 0
	}
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
