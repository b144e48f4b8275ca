package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var flagCheckConfig string

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the default config or check a custom one",
	Long: `Prints the built-in platformer.yaml. Save it to
~/.arcade/configs/platformer.yaml or ./configs/platformer.yaml to override it.

Examples:
  platformer config > ~/.arcade/configs/platformer.yaml
  platformer config --check ./my-physics.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheckConfig, "check", "", "Load and validate a config file instead of printing the default")
}

func runConfig(_ *cobra.Command, args []string) error {
	if flagCheckConfig != "" {
		cfg, err := config.LoadPlatformer(flagCheckConfig)
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok (gravity %.2f, jump %.1f, lives %d)\n",
			flagCheckConfig, cfg.Physics.Gravity, cfg.Player.JumpPower, cfg.Player.Lives)
		return nil
	}

	gameID := "platformer"
	if len(args) == 1 {
		gameID = args[0]
	}
	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("no default config for mode %q", gameID)
	}
	_, err := os.Stdout.Write(data)
	return err
}
