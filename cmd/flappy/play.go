package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var flagWatchConfig bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Space/Up/W   - Jump (the first jump starts the run)
  Left click   - Jump, or press the Restart button after game over
  R/Enter      - Restart (after game over)
  Ctrl+S       - Save a screenshot
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

With --watch-config, edits to the config file are picked up while playing
and take effect at the next restart.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./flappy.yaml --watch-config
  flappy play --log-file /tmp/flappy.log --log-level debug`,
	Run: run(runPlay),
}

func init() {
	playCmd.Flags().BoolVar(&flagWatchConfig, "watch-config", false, "Reload the config file when it changes")
}

func runPlay(_ []string) error {
	gameCfg, cfgPath, err := loadConfig()
	if err != nil {
		return err
	}

	// Bubble Tea owns the terminal, so logs only go to a file.
	logger, closer, err := openLogger(nil, "flappy")
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck // Best-effort cleanup

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	eng := engine.New(gameCfg.Engine(), newRand(rt.Seed))
	p := tui.NewProgram(tui.NewModel(eng, tui.Options{
		Runtime: rt,
		Logger:  logger,
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if flagWatchConfig {
		if cfgPath == "" {
			fmt.Fprintln(os.Stderr, "Warning: --watch-config needs a config file; using built-in defaults")
		} else {
			logger.Info("watching config", "path", cfgPath)
			go func() {
				err := config.Watch(ctx, cfgPath,
					func(c config.GameConfig) { p.Send(tui.ConfigReloadedMsg{Config: c.Engine()}) },
					func(err error) { logger.Warn("config reload failed", "error", err) },
				)
				if err != nil {
					logger.Error("config watcher stopped", "error", err)
				}
			}()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
