package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagResetHighScore bool
	flagResetScores    bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the saved game",
	Long: `Delete the saved in-progress game. Optionally clear the high score
and the score history too.

Examples:
  memory reset
  memory reset --high-score
  memory reset --high-score --scores`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetHighScore, "high-score", false, "Also reset the high score")
	resetCmd.Flags().BoolVar(&flagResetScores, "scores", false, "Also delete the score history")
}

func runReset(cmd *cobra.Command, args []string) {
	settings := loadSettings()
	store := mustOpenStore(settings.Storage.Path)
	defer store.Close()

	if err := store.ClearSession(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Saved game cleared.")

	if flagResetHighScore {
		if err := store.ResetHighScore(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("High score reset.")
	}

	if flagResetScores {
		if err := store.ClearScores(""); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Score history deleted.")
	}
}
