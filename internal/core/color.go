package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Palette used by the board and menus.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// faceColors cycles through for card values so equal values share a color.
var faceColors = []Color{
	ColorBrightRed,
	ColorBrightGreen,
	ColorBrightYellow,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorBrightCyan,
	ColorOrange,
	ColorBrightWhite,
}

// FaceColor returns the display color for a card value.
func FaceColor(value int) Color {
	if value <= 0 {
		return ColorDefault
	}
	return faceColors[(value-1)%len(faceColors)]
}
