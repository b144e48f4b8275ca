package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/content"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Inspect and validate level packs",
	Long: `Level packs are directories of YAML files, one level per file.
A pack given with --levels-dir (or found at ~/.arcade/levels) is played
before the built-in levels; numbers it lacks come from the built-in set.`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List the levels of a pack, or the authored built-in levels",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLevelsList,
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate <dir>",
	Short: "Check every level file in a pack",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelsValidate,
}

func init() {
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsValidateCmd)
}

func printLevel(spec content.LevelSpec) {
	fmt.Printf("  %-5d  %-22s  %-8s  %6.0f  %7d  %12d\n",
		spec.Number, spec.Name, spec.Theme, spec.Width, len(spec.Enemies), len(spec.Collectibles))
}

func printLevelHeader() {
	fmt.Printf("  %-5s  %-22s  %-8s  %6s  %7s  %12s\n", "Level", "Name", "Theme", "Width", "Enemies", "Collectibles")
	fmt.Printf("  %-5s  %-22s  %-8s  %6s  %7s  %12s\n", "-----", "----", "-----", "-----", "-------", "------------")
}

func runLevelsList(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		builtin := content.NewBuiltin(flagSeed)
		fmt.Printf("Built-in levels (seed %d)\n\n", flagSeed)
		printLevelHeader()
		for n := 1; n <= content.HandLevelCount; n++ {
			spec, err := builtin.Level(n)
			if err != nil {
				return err
			}
			printLevel(spec)
		}
		fmt.Println()
		fmt.Println("Levels past these are generated from the seed.")
		return nil
	}

	pack, err := content.OpenPack(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Level pack %s\n\n", pack.Dir())
	printLevelHeader()
	for _, n := range pack.Numbers() {
		spec, err := pack.Level(n)
		if err != nil {
			return err
		}
		printLevel(spec)
	}
	return nil
}

func runLevelsValidate(_ *cobra.Command, args []string) error {
	dir := args[0]
	failed := 0
	checked := 0

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !content.IsLevelFile(path) {
			return nil
		}
		checked++
		spec, loadErr := content.LoadFile(path)
		if loadErr == nil {
			fmt.Printf("  ok    %s (level %d)\n", path, spec.Number)
			return nil
		}
		failed++
		fmt.Printf("  FAIL  %s\n        %v\n", path, loadErr)
		if ke, ok := content.AsKindError(loadErr); ok {
			fmt.Printf("        %q is not a known %s kind\n", ke.Value, ke.Category)
		}
		var ve content.ValidationError
		if errors.As(loadErr, &ve) {
			fmt.Printf("        validation code: %s\n", ve.Code)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Cross-file checks such as duplicate level numbers
	if failed == 0 {
		if _, err := content.LoadDir(dir); err != nil {
			return err
		}
	}

	fmt.Printf("\n%d file(s) checked, %d failed\n", checked, failed)
	if failed > 0 {
		return fmt.Errorf("%d invalid level file(s)", failed)
	}
	return nil
}
