package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/app"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing. Without a mode the campaign starts.

Controls:
  A/D, Left/Right  - Run
  Space/W/Up       - Jump
  X/F              - Throw a fireball (with a fire flower)
  Enter            - Continue after a level
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, slow enemies that speed up
  normal - 3 lives, progression from 30%
  hard   - 2 lives, progression from 70%
  fixed  - No progression, stays at config's initial level

Examples:
  platformer play
  platformer play platformer_endless
  platformer play --difficulty hard --level 4
  platformer play --config ./my-platformer.yaml
  platformer play --levels-dir ./levels --watch --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addSessionFlags(playCmd, true)
}

// terminalConfig builds the runtime config from the terminal size.
func terminalConfig() core.RuntimeConfig {
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
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "platformer"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'platformer list' to see available modes", gameID)
	}

	a, err := app.Open(sessionOptions(true), logger)
	if err != nil {
		return err
	}
	defer a.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Debug("starting", "mode", gameID, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, a.Store, terminalConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
