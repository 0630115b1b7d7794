// memory is a terminal memory-matching card game.
//
// Usage:
//
//	memory                   - Start at the title screen
//	memory play [level]      - Play, optionally jumping straight to a level
//	memory levels            - List levels
//	memory scores [level]    - Show high scores
//	memory reset             - Clear the saved game
//
// Global flags:
//
//	--config <path>     - Settings file (default: ~/.memory/config.yaml)
//	--db <path>         - Database path (default: ~/.memory/memory.db)
//	--seed <value>      - RNG seed for reproducible shuffles
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory - Match card pairs against the clock",
	Long: `Memory is a terminal card-matching game. Flip two cards at a time,
find every pair before the countdown runs out and beat your high score.

Available commands:
  play     - Start the game (optionally at a level)
  levels   - Show the available levels
  scores   - View high scores
  reset    - Clear the saved game

Examples:
  memory
  memory play hard
  memory scores easy
  memory reset --high-score`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to game database (overrides settings)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
}
