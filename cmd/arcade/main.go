// arcade is a TUI arcade with a lane tower-defense shooter and a ski dodge game.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--speed <x>     - Starting game speed multiplier (0.5, 1, 1.5, 2)
//	--mute          - Disable sound effects
//	--debug         - Write debug logs to ~/.arcade/arcade.log
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/squad-arcade/internal/games/ski"
	_ "github.com/vovakirdan/squad-arcade/internal/games/squad"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagSpeed  float64
	flagMute   bool
	flagDebug  bool

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Squad Arcade - Defend the bridge or race down the slope in your terminal",
	Long: `Squad Arcade is a terminal arcade with two games:

  squad  - Squad Defense: lead a growing squad across a bridge and hold
           the lanes against waves, mid-bosses and boss fights
  ski    - Ski Dodge: steer down an accelerating slope past trees,
           rocks, bears and other skiers

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and run history

Examples:
  arcade list
  arcade play squad
  arcade play ski --speed 1.5
  arcade menu --mute
  arcade serve --ssh :2222
  arcade scores squad --runs`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		l, err := newLogger(flagDebug)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().Float64Var(&flagSpeed, "speed", 1, "Starting speed multiplier: 0.5, 1, 1.5 or 2")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug logs to ~/.arcade/arcade.log")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
