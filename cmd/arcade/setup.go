package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/squad-arcade/internal/audio"
	"github.com/vovakirdan/squad-arcade/internal/core"
	"github.com/vovakirdan/squad-arcade/internal/games/ski"
	"github.com/vovakirdan/squad-arcade/internal/games/squad"
	"github.com/vovakirdan/squad-arcade/internal/platform/tui"
	"github.com/vovakirdan/squad-arcade/internal/storage"
)

// newLogger builds the CLI logger. The game owns the terminal while it runs,
// so debug output goes to a file under ~/.arcade.
func newLogger(debug bool) (*log.Logger, error) {
	if !debug {
		l := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade",
		})
		l.SetLevel(log.WarnLevel)
		return l, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		ReportCaller:    true,
		Prefix:          "arcade",
	})
	l.SetLevel(log.DebugLevel)
	return l, nil
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Speed:    core.StepSpeed(flagSpeed, 0),
	}
}

// applyGameFlags passes the per-game config flags to the game packages
// before the game is created.
func applyGameFlags(gameID string) {
	switch gameID {
	case "squad":
		squad.SetConfigPath(flagConfig)
		squad.SetDifficultyPreset(flagDifficulty)
	case "ski":
		ski.SetConfigPath(flagConfig)
		ski.SetDifficultyPreset(flagDifficulty)
	}
}

// openStore opens the scores database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openAudio starts the speaker unless muted. A machine without an audio
// device gets a silent player.
func openAudio() *audio.Player {
	player := audio.NewPlayer()
	if flagMute {
		return player
	}
	if err := player.Initialize(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	return player
}

// gameOptions bundles the collaborators for a local game session.
func gameOptions(store *storage.Store, player *audio.Player) tui.Options {
	return tui.Options{
		Store:  store,
		Audio:  player,
		Logger: logger,
	}
}
