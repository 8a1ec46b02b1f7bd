package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/squad-arcade/internal/platform/tui"
	"github.com/vovakirdan/squad-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Change lane (squad) / steer (ski)
  Up/Down, W/S     - Move the squad up and down the bridge
  Space            - Fire (hold for sustained fire)
  F                - Toggle auto-fire
  [ / ]            - Slower / faster game speed
  P/Esc            - Pause
  M/Esc            - Back to menu (while paused or after game over)
  R                - Restart (after game over)
  N                - Mute sound
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives and a gentler start (squad), slow start (ski)
  normal - Default settings
  hard   - Fewer lives and more shooters (squad), fast start (ski)
  fixed  - Ski speed never ramps up

Examples:
  arcade play squad
  arcade play squad --difficulty hard
  arcade play ski --speed 1.5
  arcade play ski --difficulty fixed
  arcade play squad --config ./my-squad.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	cfg := runtimeConfig()
	applyGameFlags(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	player := openAudio()

	_, runErr := tui.Run(game, gameOptions(store, player), cfg)

	// Release resources before potential exit
	player.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
