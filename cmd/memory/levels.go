package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all levels",
	Long:  `Shows the card count and time limit of every level.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	fmt.Println("Available levels:")
	fmt.Println()

	fmt.Printf("  %-3s  %-8s  %-5s  %-5s  %s\n", "#", "Level", "Cards", "Grid", "Time")
	fmt.Printf("  %-3s  %-8s  %-5s  %-5s  %s\n", "-", "-----", "-----", "----", "----")

	for i, d := range config.Difficulties() {
		cfg, _ := config.ConfigFor(d)
		grid := fmt.Sprintf("%dx%d", cfg.Columns(), cfg.Columns())
		fmt.Printf("  %-3d  %-8s  %-5d  %-5s  %ds\n", i+1, d, cfg.Cards, grid, cfg.TimeSeconds)
	}

	fmt.Println()
	fmt.Println("Run 'memory play <level>' to play a level.")
}
