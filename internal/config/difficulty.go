package config

import (
	"fmt"
	"math"
	"strings"
)

// Difficulty names one of the fixed board-size presets.
type Difficulty string

const (
	DifficultyNone   Difficulty = ""
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// LevelConfig holds the static parameters of a difficulty.
type LevelConfig struct {
	Cards       int // Always even and a perfect square
	TimeSeconds int // Countdown budget
}

// levelTable is the fixed per-difficulty configuration.
var levelTable = map[Difficulty]LevelConfig{
	DifficultyEasy:   {Cards: 16, TimeSeconds: 60},
	DifficultyMedium: {Cards: 36, TimeSeconds: 120},
	DifficultyHard:   {Cards: 64, TimeSeconds: 150},
}

// Difficulties returns all difficulties from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ConfigFor returns the configuration for a difficulty.
// The boolean is false for unknown difficulties.
func ConfigFor(d Difficulty) (LevelConfig, bool) {
	cfg, ok := levelTable[d]
	return cfg, ok
}

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	_, ok := levelTable[d]
	return ok
}

// Title returns the display name ("EASY", "MEDIUM", ...).
func (d Difficulty) Title() string {
	return strings.ToUpper(string(d))
}

// String returns the difficulty identifier.
func (d Difficulty) String() string {
	return string(d)
}

// ParseDifficulty converts user input into a Difficulty.
// Accepts names in any case and the shortcuts "1", "2", "3".
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "e", "1":
		return DifficultyEasy, nil
	case "medium", "m", "2":
		return DifficultyMedium, nil
	case "hard", "h", "3":
		return DifficultyHard, nil
	default:
		return DifficultyNone, fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// Columns returns the side length of the square grid.
func (c LevelConfig) Columns() int {
	return int(math.Sqrt(float64(c.Cards)))
}

// Pairs returns the number of distinct card faces.
func (c LevelConfig) Pairs() int {
	return c.Cards / 2
}
