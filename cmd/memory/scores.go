package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top 10 finished games for a level, or across all levels
when no level is given.

Examples:
  memory scores
  memory scores easy`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	level := config.DifficultyNone
	if len(args) == 1 {
		d, err := config.ParseDifficulty(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'memory levels' to see available levels.")
			os.Exit(1)
		}
		level = d
	}

	settings := loadSettings()
	store := mustOpenStore(settings.Storage.Path)
	defer store.Close()

	scores, err := store.TopScores(string(level), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	title := "All levels"
	if level != config.DifficultyNone {
		title = level.Title()
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'memory play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-7s  %-9s  %-5s  %s\n", "Rank", "Level", "Score", "Result", "Left", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-9s  %-5s  %s\n", "----", "-----", "-----", "------", "----", "----")

	for i, e := range scores {
		result := "won"
		if e.Outcome != "won" {
			result = "time over"
		}
		fmt.Printf("  %-4d  %-6s  %-7d  %-9s  %-5d  %s\n",
			i+1, e.Level, e.Score, result, e.RemainingTime, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if level != config.DifficultyNone {
		if stats, err := store.GetLevelStats(string(level)); err == nil {
			fmt.Printf("Games: %d  Wins: %d  Avg: %.1f\n", stats.Games, stats.Wins, stats.AvgScore)
		}
	}
	if high, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}
