package memory

import "math/rand"

// PairValues returns 1, 1, 2, 2, ..., pairs, pairs.
func PairValues(pairs int) []int {
	values := make([]int, 0, pairs*2)
	for v := 1; v <= pairs; v++ {
		values = append(values, v, v)
	}
	return values
}

// Shuffle permutes values in place with Fisher-Yates so every ordering of
// the multiset is equally likely.
func Shuffle(values []int, rng *rand.Rand) {
	for i := len(values) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}

// dealCards generates a shuffled face-down board of the given size.
func dealCards(cards int, rng *rand.Rand) []Card {
	values := PairValues(cards / 2)
	Shuffle(values, rng)

	board := make([]Card, len(values))
	for i, v := range values {
		board[i] = Card{Index: i, Value: v, State: CardHidden}
	}
	return board
}
