package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// loadSettings reads the settings file and applies flag overrides.
func loadSettings() config.Settings {
	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDBPath != "" {
		settings.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		settings.Log.Level = flagLogLevel
	}
	return settings
}

// openLogger creates the file logger. The terminal belongs to the game,
// so log output never goes to stdout. An empty path discards logs.
func openLogger(settings config.LogSettings) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(settings.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", settings.Level, err)
	}

	if settings.Path == "" {
		logger := log.New(io.Discard)
		logger.SetLevel(level)
		return logger, nopCloser{}, nil
	}

	path, err := config.ExpandHome(settings.Path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "memory",
		Level:           level,
	})
	return logger, f, nil
}

// mustOpenStore opens the database or exits.
func mustOpenStore(path string) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening game database: %v\n", err)
		os.Exit(1)
	}
	return store
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
