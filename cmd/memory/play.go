package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the game",
	Long: `Start the game. With a level argument the title and level screens
are skipped. A game saved for the same level is resumed.

Levels:
  easy   (1) - 16 cards, 1:00
  medium (2) - 36 cards, 2:00
  hard   (3) - 64 cards, 2:30

Controls:
  Arrows/HJKL  - Move between cards
  Enter/Space  - Flip card (mouse click works too)
  P            - Pause
  M            - Mute
  R            - Restart level
  Esc/B        - Save and go back to level select
  Q/Ctrl+C     - Save and quit

Examples:
  memory play
  memory play medium
  memory play 3 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
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

	logger, logFile, err := openLogger(settings.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	store, err := storage.Open(settings.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open game database: %v\n", err)
		logger.Warn("running without storage", "path", settings.Storage.Path, "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "level", level, "seed", flagSeed, "db", settings.Storage.Path,
		"size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	runErr := tui.Run(tui.Options{
		Store:    store,
		Settings: settings,
		Runtime:  cfg,
		Logger:   logger,
		Bell:     os.Stderr,
		Level:    level,
	})
	if runErr != nil {
		logger.Error("game exited with error", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
