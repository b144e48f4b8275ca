// Package app wires the platformer session to its collaborators: the score
// database, an optional YAML level pack with hot reload, and audio. Both the
// terminal and the graphical binaries start through Open.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/content"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Options selects which collaborators Open sets up.
type Options struct {
	DBPath     string // empty disables persistence
	ConfigPath string // explicit config file; must load when set
	Difficulty string // easy, normal, hard or fixed
	StartLevel int

	LevelsDir string // YAML level pack, empty uses ~/.arcade/levels if it exists
	Watch     bool   // reload the pack when its files change

	Audio  bool
	Volume float64 // 0..1
}

// App holds the collaborators installed into the platformer package.
type App struct {
	Store  *storage.Store
	Pack   *content.Pack
	Sink   *audio.Sink
	logger *log.Logger
	cancel context.CancelFunc
	done   chan struct{}
}

// Open validates the options and installs the collaborators into the
// platformer package. Missing optional pieces (database, speaker) are
// logged and skipped; a bad config or level pack is an error.
func Open(opts Options, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = log.Default()
	}
	a := &App{logger: logger}

	if opts.ConfigPath != "" {
		if _, err := config.LoadPlatformer(opts.ConfigPath); err != nil {
			return nil, err
		}
	}
	platformer.SetConfigPath(opts.ConfigPath)
	platformer.SetDifficultyPreset(opts.Difficulty)
	platformer.SetStartLevel(opts.StartLevel)

	if err := a.openPack(opts); err != nil {
		return nil, err
	}

	if opts.DBPath != "" {
		store, err := storage.Open(opts.DBPath)
		if err != nil {
			logger.Warn("could not open scores database", "path", opts.DBPath, "error", err)
		} else {
			a.Store = store
			platformer.SetHighScoreStore(store)
		}
	}

	if opts.Audio && opts.Volume > 0 {
		sink, err := audio.NewSink(audio.Options{Volume: opts.Volume}, logger)
		if err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			a.Sink = sink
			platformer.SetEffectSink(sink)
		}
	}

	return a, nil
}

// openPack loads the level pack and starts the watcher when asked to.
func (a *App) openPack(opts Options) error {
	dir := opts.LevelsDir
	if dir == "" {
		dir = config.UserLevelsDir()
		if dir == "" {
			return nil
		}
		if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
			return nil
		}
	}

	pack, err := content.OpenPack(dir)
	if err != nil {
		return fmt.Errorf("level pack: %w", err)
	}
	a.Pack = pack
	platformer.SetLevelSource(pack)
	a.logger.Info("level pack loaded", "dir", dir, "levels", len(pack.Numbers()))

	if !opts.Watch {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.done = make(chan struct{})
	go func() {
		defer close(a.done)
		if err := content.WatchPack(ctx, pack, a.logger.WithPrefix("levels")); err != nil {
			a.logger.Error("level watcher stopped", "error", err)
		}
	}()
	return nil
}

// Close stops the watcher, the speaker and the database, and removes the
// collaborators from the platformer package.
func (a *App) Close() {
	if a.cancel != nil {
		a.cancel()
		<-a.done
	}
	if a.Sink != nil {
		a.Sink.Close()
		platformer.SetEffectSink(nil)
	}
	if a.Pack != nil {
		platformer.SetLevelSource(nil)
	}
	if a.Store != nil {
		platformer.SetHighScoreStore(nil)
		if err := a.Store.Close(); err != nil {
			a.logger.Debug("closing scores database", "error", err)
		}
	}
}
