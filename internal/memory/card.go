package memory

// CardState is the visibility of a card on the board.
type CardState int

const (
	CardHidden  CardState = iota // Face down
	CardFlipped                  // Face up, waiting for resolution
	CardMatched                  // Paired; terminal
)

// String returns a human-readable name for the state.
func (s CardState) String() string {
	switch s {
	case CardHidden:
		return "hidden"
	case CardFlipped:
		return "flipped"
	case CardMatched:
		return "matched"
	default:
		return "unknown"
	}
}

// Card is one position on the board.
type Card struct {
	Index int // Position in the generated sequence
	Value int // Face value in [1, cards/2], present exactly twice
	State CardState
}

// FaceUp reports whether the card's value is visible.
func (c Card) FaceUp() bool {
	return c.State != CardHidden
}
