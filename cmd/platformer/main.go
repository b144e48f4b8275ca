// platformer is a side-scrolling platformer played in the terminal.
//
// Usage:
//
//	platformer list                  - List game modes
//	platformer play [mode]           - Play (campaign by default)
//	platformer menu                  - Pick a mode interactively
//	platformer serve                 - Start SSH server for remote play
//	platformer scores [mode]         - Show high scores
//	platformer levels list [dir]     - Show levels of a pack or the built-in set
//	platformer levels validate <dir> - Check a YAML level pack
//	platformer config                - Print the default config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible levels
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/app"
	// Import the game to register it
	_ "github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Session flags shared by play, menu and serve
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLevelsDir  string
	flagWatch      bool
	flagVolume     float64
	flagMute       bool

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - run, jump and stomp in your terminal",
	Long: `Platformer is a side-scrolling platformer for the terminal.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - Inspect and validate level packs
  config   - Print or check the physics config

Examples:
  platformer play
  platformer play platformer_endless --seed 42
  platformer play --difficulty easy --level 3
  platformer play --levels-dir ./levels --watch
  platformer serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Prefix:          "platformer",
			Level:           level,
		})
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// addSessionFlags registers the flags that shape a game session.
func addSessionFlags(cmd *cobra.Command, withAudio bool) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().IntVar(&flagLevel, "level", 1, "Campaign level to start at")
	cmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "YAML level pack directory (default ~/.arcade/levels if present)")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the level pack when its files change")
	if withAudio {
		cmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
		cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	}
}

// sessionOptions collects the session flags.
func sessionOptions(withAudio bool) app.Options {
	return app.Options{
		DBPath:     flagDBPath,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		StartLevel: flagLevel,
		LevelsDir:  flagLevelsDir,
		Watch:      flagWatch,
		Audio:      withAudio && !flagMute,
		Volume:     flagVolume,
	}
}
