// platformer-gui plays the platformer in a desktop window.
//
// Usage:
//
//	platformer-gui [mode] [flags]
//
// Controls match the terminal version; arrow keys and WASD are read as
// real key state, so movement stops the moment a key is released.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/app"
	"github.com/vovakirdan/tui-platformer/internal/core"
	// Import the game to register it
	_ "github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/gui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var (
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	opts         app.Options
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer-gui [mode]",
	Short: "Play the platformer in a window",
	Long: `Opens a 1024x576 window and plays a mode (campaign by default).

Controls:
  A/D, Left/Right  - Run
  Space/W/Up       - Jump
  X/F              - Throw a fireball (with a fire flower)
  Enter            - Continue after a level
  P/Esc            - Pause
  R                - Restart (after game over)
  Q                - Quit`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	f.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	f.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	f.StringVar(&opts.DBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	f.StringVar(&opts.ConfigPath, "config", "", "Path to custom platformer config YAML")
	f.StringVar(&opts.Difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	f.IntVar(&opts.StartLevel, "level", 1, "Campaign level to start at")
	f.StringVar(&opts.LevelsDir, "levels-dir", "", "YAML level pack directory (default ~/.arcade/levels if present)")
	f.BoolVar(&opts.Watch, "watch", false, "Reload the level pack when its files change")
	f.Float64Var(&opts.Volume, "volume", 0.5, "Sound volume from 0 to 1")
	f.BoolVar(&opts.Audio, "sound", true, "Play sound effects")
}

func run(_ *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "platformer-gui",
		Level:           level,
	})

	gameID := "platformer"
	if len(args) == 1 {
		gameID = args[0]
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	a, err := app.Open(opts, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	var saver gui.ScoreSaver
	if a.Store != nil {
		saver = a.Store
	}

	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	return gui.Run(game, saver, cfg, logger)
}
